package console

import (
	"fmt"

	inventoryapp "github.com/procurement/backend/internal/application/inventory"
	procurementapp "github.com/procurement/backend/internal/application/procurement"
)

func (s *Shell) renderOrder(order *procurementapp.OrderResponse) {
	fmt.Fprintf(s.out, "purchase order #%d, supplier %s\n", order.ID, order.SupplierName)
	for _, line := range order.Lines {
		fmt.Fprintf(s.out, "  line %d: %-24s ordered %d %s, received %d, outstanding %d\n",
			line.LineNo, line.ItemName, line.OrderedQty, line.Unit, line.ReceivedQty, line.OutstandingQty)
	}
}

func (s *Shell) renderReceipt(receipt *procurementapp.ReceiptResponse) {
	fmt.Fprintf(s.out, "goods receipt #%d for order #%d\n", receipt.ID, receipt.OrderID)
	if len(receipt.Lines) == 0 {
		fmt.Fprintln(s.out, "  no lines recorded")
		return
	}
	for _, line := range receipt.Lines {
		fmt.Fprintf(s.out, "  line %d: %-24s received %d\n", line.LineNo, line.ItemName, line.ReceivedQty)
	}
}

func (s *Shell) renderInspection(lot *procurementapp.InspectionResponse) {
	fmt.Fprintf(s.out, "inspection lot #%d (receipt #%d, order #%d)\n", lot.ID, lot.ReceiptID, lot.OrderID)
	if len(lot.Lines) == 0 {
		fmt.Fprintln(s.out, "  nothing received to inspect")
		return
	}
	for _, line := range lot.Lines {
		fmt.Fprintf(s.out, "  line %d: %-24s received %d, accepted %d, rejected %d",
			line.LineNo, line.ItemName, line.ReceivedQty, line.AcceptedQty, line.RejectedQty)
		if line.Reason != "" {
			fmt.Fprintf(s.out, " (reason: %s)", line.Reason)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) renderStock(levels []inventoryapp.StockLevel) {
	fmt.Fprintln(s.out, "inventory:")
	if len(levels) == 0 {
		fmt.Fprintln(s.out, "  empty")
		return
	}
	for _, level := range levels {
		fmt.Fprintf(s.out, "  #%-6d %-24s %d %s\n", level.ItemID, level.ItemName, level.Quantity, level.Unit)
	}
}

// renderOutstanding lists order lines that still have quantity open
func (s *Shell) renderOutstanding(orders []procurementapp.OrderResponse) {
	fmt.Fprintln(s.out, "outstanding order quantities:")
	any := false
	for _, order := range orders {
		for _, line := range order.Lines {
			if line.OutstandingQty == 0 {
				continue
			}
			any = true
			fmt.Fprintf(s.out, "  order #%d line %d: %-24s %d %s open\n",
				order.ID, line.LineNo, line.ItemName, line.OutstandingQty, line.Unit)
		}
	}
	if !any {
		fmt.Fprintln(s.out, "  none, all orders fully received")
	}
}

func (s *Shell) renderRejections(rejections []procurementapp.RejectionResponse) {
	fmt.Fprintln(s.out, "rejection log:")
	if len(rejections) == 0 {
		fmt.Fprintln(s.out, "  empty")
		return
	}
	for _, rejection := range rejections {
		fmt.Fprintf(s.out, "  #%-6d line %d %-24s qty %d, reason: %s\n",
			rejection.ID, rejection.LineNo, rejection.ItemName, rejection.Quantity, rejection.Reason)
	}
}
