package procurement

import (
	"time"

	"github.com/procurement/backend/internal/domain/procurement"
)

// CreateOrderRequest is the request to create a purchase order
type CreateOrderRequest struct {
	SupplierID int64              `json:"supplier_id" validate:"required"`
	Lines      []OrderLineRequest `json:"lines" validate:"dive"`
}

// OrderLineRequest is one requested order line. Quantity semantics (positive
// ordered quantity, clamping on credit) are enforced by the domain, not here.
type OrderLineRequest struct {
	ItemID int64 `json:"item_id" validate:"required"`
	Qty    int64 `json:"qty"`
}

// OrderLineResponse describes one order line with its derived quantities
type OrderLineResponse struct {
	LineNo         int    `json:"line_no"`
	ItemID         int64  `json:"item_id"`
	ItemName       string `json:"item_name"`
	Unit           string `json:"unit"`
	OrderedQty     int64  `json:"ordered_qty"`
	ReceivedQty    int64  `json:"received_qty"`
	OutstandingQty int64  `json:"outstanding_qty"`
}

// OrderResponse describes a purchase order
type OrderResponse struct {
	ID           int64               `json:"id"`
	SupplierID   int64               `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	CreatedAt    time.Time           `json:"created_at"`
	Lines        []OrderLineResponse `json:"lines"`
}

// RecordLineResult reports the outcome of recording one receipt line: what
// was asked for, what was applied after clamping, and what remains
// outstanding on the order line afterwards.
type RecordLineResult struct {
	LineNo         int   `json:"line_no"`
	RequestedQty   int64 `json:"requested_qty"`
	AppliedQty     int64 `json:"applied_qty"`
	OutstandingQty int64 `json:"outstanding_qty"`
}

// ReceiptLineResponse describes one recorded receipt line
type ReceiptLineResponse struct {
	LineNo      int    `json:"line_no"`
	ItemName    string `json:"item_name"`
	ReceivedQty int64  `json:"received_qty"`
}

// ReceiptResponse describes a goods receipt
type ReceiptResponse struct {
	ID        int64                 `json:"id"`
	OrderID   int64                 `json:"order_id"`
	CreatedAt time.Time             `json:"created_at"`
	Lines     []ReceiptLineResponse `json:"lines"`
}

// DispositionResult reports the outcome of an accept or reject call
type DispositionResult struct {
	LineNo       int   `json:"line_no"`
	RequestedQty int64 `json:"requested_qty"`
	AppliedQty   int64 `json:"applied_qty"`
}

// InspectionLineResponse describes the disposition state of one lot line
type InspectionLineResponse struct {
	LineNo      int    `json:"line_no"`
	ItemName    string `json:"item_name"`
	ReceivedQty int64  `json:"received_qty"`
	AcceptedQty int64  `json:"accepted_qty"`
	RejectedQty int64  `json:"rejected_qty"`
	Reason      string `json:"reason,omitempty"`
}

// InspectionResponse describes an inspection lot
type InspectionResponse struct {
	ID        int64                    `json:"id"`
	ReceiptID int64                    `json:"receipt_id"`
	OrderID   int64                    `json:"order_id"`
	Lines     []InspectionLineResponse `json:"lines"`
}

// RejectionResponse describes one rejection ledger entry
type RejectionResponse struct {
	ID       int64  `json:"id"`
	LineNo   int    `json:"line_no"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

// ToOrderResponse maps a purchase order aggregate to its response DTO
func ToOrderResponse(order *procurement.PurchaseOrder) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineResponse{
			LineNo:         line.LineNo,
			ItemID:         line.Item.ID,
			ItemName:       line.Item.Name,
			Unit:           line.Item.Unit,
			OrderedQty:     line.OrderedQty,
			ReceivedQty:    line.ReceivedQty,
			OutstandingQty: line.OutstandingQty(),
		})
	}
	return OrderResponse{
		ID:           order.ID,
		SupplierID:   order.Supplier.ID,
		SupplierName: order.Supplier.Name,
		CreatedAt:    order.CreatedAt,
		Lines:        lines,
	}
}

// ToReceiptResponse maps a goods receipt to its response DTO
func ToReceiptResponse(receipt *procurement.GoodsReceipt) ReceiptResponse {
	lines := make([]ReceiptLineResponse, 0, len(receipt.ReceivedByLine))
	for _, lineNo := range receipt.LineNumbers() {
		itemName := ""
		if line, err := receipt.Order.FindLine(lineNo); err == nil {
			itemName = line.Item.Name
		}
		lines = append(lines, ReceiptLineResponse{
			LineNo:      lineNo,
			ItemName:    itemName,
			ReceivedQty: receipt.ReceivedForLine(lineNo),
		})
	}
	return ReceiptResponse{
		ID:        receipt.ID,
		OrderID:   receipt.Order.ID,
		CreatedAt: receipt.CreatedAt,
		Lines:     lines,
	}
}

// ToInspectionResponse maps an inspection lot to its response DTO.
// Lines follow the referenced receipt's recorded lines.
func ToInspectionResponse(lot *procurement.InspectionLot) InspectionResponse {
	lines := make([]InspectionLineResponse, 0, len(lot.Receipt.ReceivedByLine))
	for _, lineNo := range lot.Receipt.LineNumbers() {
		itemName := ""
		if line, err := lot.Receipt.Order.FindLine(lineNo); err == nil {
			itemName = line.Item.Name
		}
		lines = append(lines, InspectionLineResponse{
			LineNo:      lineNo,
			ItemName:    itemName,
			ReceivedQty: lot.Receipt.ReceivedForLine(lineNo),
			AcceptedQty: lot.AcceptedForLine(lineNo),
			RejectedQty: lot.RejectedForLine(lineNo),
			Reason:      lot.ReasonForLine(lineNo),
		})
	}
	return InspectionResponse{
		ID:        lot.ID,
		ReceiptID: lot.Receipt.ID,
		OrderID:   lot.Receipt.Order.ID,
		Lines:     lines,
	}
}

// ToRejectionResponse maps a rejection ledger entry to its response DTO
func ToRejectionResponse(rejection *procurement.Rejection) RejectionResponse {
	return RejectionResponse{
		ID:       rejection.ID,
		LineNo:   rejection.Line.LineNo,
		ItemName: rejection.Line.Item.Name,
		Quantity: rejection.Quantity,
		Reason:   rejection.Reason,
	}
}
