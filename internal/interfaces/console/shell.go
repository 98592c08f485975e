package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	catalogapp "github.com/procurement/backend/internal/application/catalog"
	inventoryapp "github.com/procurement/backend/internal/application/inventory"
	partnerapp "github.com/procurement/backend/internal/application/partner"
	procurementapp "github.com/procurement/backend/internal/application/procurement"
	"go.uber.org/zap"
)

// Shell is the interactive console front end. It parses operator input,
// delegates every operation to the application services, and renders their
// responses. All reconciliation math lives behind the services; the shell
// only displays derived quantities it is handed.
type Shell struct {
	suppliers   *partnerapp.SupplierService
	items       *catalogapp.ItemService
	procurement *procurementapp.ProcurementService
	inventory   *inventoryapp.InventoryService
	in          *bufio.Reader
	out         io.Writer
	logger      *zap.Logger
}

// NewShell creates an interactive shell bound to the given reader and writer
func NewShell(
	suppliers *partnerapp.SupplierService,
	items *catalogapp.ItemService,
	procurement *procurementapp.ProcurementService,
	inventory *inventoryapp.InventoryService,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Shell {
	return &Shell{
		suppliers:   suppliers,
		items:       items,
		procurement: procurement,
		inventory:   inventory,
		in:          bufio.NewReader(in),
		out:         out,
		logger:      logger,
	}
}

// Run drives the menu loop until the operator exits or input ends.
// Operation errors are surfaced as messages and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debug("shell session started")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		s.printMenu()
		choice, err := s.readLine("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = s.registerSupplier(ctx)
		case "2":
			actionErr = s.registerItem(ctx)
		case "3":
			actionErr = s.createOrder(ctx)
		case "4":
			actionErr = s.receiveGoods(ctx)
		case "5":
			actionErr = s.openInspection(ctx)
		case "6":
			actionErr = s.recordInspection(ctx)
		case "7":
			actionErr = s.inventorySummary(ctx)
		case "8":
			actionErr = s.rejectionLog(ctx)
		case "0", "q", "exit":
			fmt.Fprintln(s.out, "bye")
			return nil
		default:
			fmt.Fprintln(s.out, "unknown choice")
		}

		if actionErr != nil {
			if errors.Is(actionErr, io.EOF) {
				return nil
			}
			fmt.Fprintf(s.out, "error: %s\n", errorMessage(actionErr))
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Procurement ===")
	fmt.Fprintln(s.out, " 1) Register supplier")
	fmt.Fprintln(s.out, " 2) Register item")
	fmt.Fprintln(s.out, " 3) Create purchase order")
	fmt.Fprintln(s.out, " 4) Receive goods")
	fmt.Fprintln(s.out, " 5) Open inspection lot")
	fmt.Fprintln(s.out, " 6) Record inspection results")
	fmt.Fprintln(s.out, " 7) Inventory summary")
	fmt.Fprintln(s.out, " 8) Rejection log")
	fmt.Fprintln(s.out, " 0) Exit")
}

func (s *Shell) registerSupplier(ctx context.Context) error {
	name, err := s.readLine("supplier name: ")
	if err != nil {
		return err
	}
	contact, err := s.readLine("contact: ")
	if err != nil {
		return err
	}

	supplier, err := s.suppliers.Register(ctx, partnerapp.RegisterSupplierRequest{Name: name, Contact: contact})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "supplier #%d %q registered\n", supplier.ID, supplier.Name)
	return nil
}

func (s *Shell) registerItem(ctx context.Context) error {
	name, err := s.readLine("item name: ")
	if err != nil {
		return err
	}
	unit, err := s.readLine("unit (e.g. kg, pcs): ")
	if err != nil {
		return err
	}

	item, err := s.items.Register(ctx, catalogapp.RegisterItemRequest{Name: name, Unit: unit})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "item #%d %q registered\n", item.ID, item.Name)
	return nil
}

func (s *Shell) createOrder(ctx context.Context) error {
	if err := s.listSuppliers(ctx); err != nil {
		return err
	}
	supplierID, err := s.readInt64("supplier id: ")
	if err != nil {
		return err
	}

	if err := s.listItems(ctx); err != nil {
		return err
	}

	var lines []procurementapp.OrderLineRequest
	for {
		itemID, err := s.readInt64("item id (0 to finish): ")
		if err != nil {
			return err
		}
		if itemID == 0 {
			break
		}
		qty, err := s.readInt64("ordered qty: ")
		if err != nil {
			return err
		}
		lines = append(lines, procurementapp.OrderLineRequest{ItemID: itemID, Qty: qty})
	}

	order, err := s.procurement.CreateOrder(ctx, procurementapp.CreateOrderRequest{
		SupplierID: supplierID,
		Lines:      lines,
	})
	if err != nil {
		return err
	}
	s.renderOrder(order)
	return nil
}

// receiveGoods opens a goods receipt against an order and walks its lines,
// recording one quantity per line. Clamped lines are called out so the
// operator sees what was actually applied.
func (s *Shell) receiveGoods(ctx context.Context) error {
	orderID, err := s.readInt64("purchase order id: ")
	if err != nil {
		return err
	}
	order, err := s.procurement.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	receipt, err := s.procurement.CreateReceipt(ctx, orderID)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "goods receipt #%d opened for order #%d\n", receipt.ID, orderID)

	for _, line := range order.Lines {
		prompt := fmt.Sprintf("line %d %s (outstanding %d %s), received qty: ",
			line.LineNo, line.ItemName, line.OutstandingQty, line.Unit)
		qty, err := s.readInt64(prompt)
		if err != nil {
			return err
		}

		result, err := s.procurement.RecordReceiptLine(ctx, receipt.ID, line.LineNo, qty)
		if err != nil {
			fmt.Fprintf(s.out, "error: %s\n", errorMessage(err))
			continue
		}
		if result.AppliedQty < result.RequestedQty {
			fmt.Fprintf(s.out, "  recorded %d of %d (clamped to outstanding), %d still open\n",
				result.AppliedQty, result.RequestedQty, result.OutstandingQty)
		} else {
			fmt.Fprintf(s.out, "  recorded %d, %d still open\n", result.AppliedQty, result.OutstandingQty)
		}
	}

	updated, err := s.procurement.GetReceipt(ctx, receipt.ID)
	if err != nil {
		return err
	}
	s.renderReceipt(updated)
	return nil
}

func (s *Shell) openInspection(ctx context.Context) error {
	receiptID, err := s.readInt64("goods receipt id: ")
	if err != nil {
		return err
	}
	lot, err := s.procurement.CreateInspection(ctx, receiptID)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "inspection lot #%d opened for receipt #%d\n", lot.ID, lot.ReceiptID)
	s.renderInspection(lot)
	return nil
}

// recordInspection records accept/reject dispositions against a lot, one
// line at a time, until the operator enters line 0.
func (s *Shell) recordInspection(ctx context.Context) error {
	lotID, err := s.readInt64("inspection lot id: ")
	if err != nil {
		return err
	}
	lot, err := s.procurement.GetInspection(ctx, lotID)
	if err != nil {
		return err
	}
	s.renderInspection(lot)

	for {
		lineNo, err := s.readInt("line no (0 to finish): ")
		if err != nil {
			return err
		}
		if lineNo == 0 {
			break
		}

		disposition, err := s.readChoice("accept or reject [A/R]: ", "A", "R")
		if err != nil {
			return err
		}
		qty, err := s.readInt64("qty: ")
		if err != nil {
			return err
		}

		var result *procurementapp.DispositionResult
		if disposition == "A" {
			result, err = s.procurement.AcceptLine(ctx, lotID, lineNo, qty)
		} else {
			reason, readErr := s.readLine("reason: ")
			if readErr != nil {
				return readErr
			}
			result, err = s.procurement.RejectLine(ctx, lotID, lineNo, qty, reason)
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %s\n", errorMessage(err))
			continue
		}
		if result.AppliedQty < result.RequestedQty {
			fmt.Fprintf(s.out, "  applied %d of %d (clamped to undisposed)\n", result.AppliedQty, result.RequestedQty)
		} else {
			fmt.Fprintf(s.out, "  applied %d\n", result.AppliedQty)
		}
	}

	updated, err := s.procurement.GetInspection(ctx, lotID)
	if err != nil {
		return err
	}
	s.renderInspection(updated)
	return nil
}

// inventorySummary shows current stock and which order quantities are still
// outstanding, both read straight from the services.
func (s *Shell) inventorySummary(ctx context.Context) error {
	levels, err := s.inventory.Snapshot(ctx)
	if err != nil {
		return err
	}
	s.renderStock(levels)

	orders, err := s.procurement.ListOrders(ctx)
	if err != nil {
		return err
	}
	s.renderOutstanding(orders)
	return nil
}

func (s *Shell) rejectionLog(ctx context.Context) error {
	rejections, err := s.procurement.ListRejections(ctx)
	if err != nil {
		return err
	}
	s.renderRejections(rejections)
	return nil
}

func (s *Shell) listSuppliers(ctx context.Context) error {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return err
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(s.out, "no suppliers registered yet")
		return nil
	}
	fmt.Fprintln(s.out, "suppliers:")
	for _, supplier := range suppliers {
		fmt.Fprintf(s.out, "  #%-6d %-24s %s\n", supplier.ID, supplier.Name, supplier.Contact)
	}
	return nil
}

func (s *Shell) listItems(ctx context.Context) error {
	items, err := s.items.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "no items registered yet")
		return nil
	}
	fmt.Fprintln(s.out, "items:")
	for _, item := range items {
		fmt.Fprintf(s.out, "  #%-6d %-24s %s\n", item.ID, item.Name, item.Unit)
	}
	return nil
}
