package procurement

import (
	"github.com/procurement/backend/internal/domain/shared"
)

// Event type constants for the procurement domain
const (
	EventTypePurchaseOrderCreated   = "procurement.purchase_order.created"
	EventTypeReceiptLineRecorded    = "procurement.goods_receipt.line_recorded"
	EventTypeInspectionLineAccepted = "procurement.inspection.line_accepted"
	EventTypeInspectionLineRejected = "procurement.inspection.line_rejected"
)

// PurchaseOrderCreatedEvent is raised when a new purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID    int64 `json:"order_id"`
	SupplierID int64 `json:"supplier_id"`
}

// NewPurchaseOrderCreatedEvent creates a new purchase order created event
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, "PurchaseOrder", order.ID),
		OrderID:         order.ID,
		SupplierID:      order.Supplier.ID,
	}
}

// ReceiptLineRecordedEvent is raised when a goods receipt records quantity
// against an order line. AppliedQty is the post-clamp value the receipt
// ledger actually took on; RequestedQty is what the caller asked for.
type ReceiptLineRecordedEvent struct {
	shared.BaseDomainEvent
	ReceiptID    int64 `json:"receipt_id"`
	OrderID      int64 `json:"order_id"`
	LineNo       int   `json:"line_no"`
	ItemID       int64 `json:"item_id"`
	RequestedQty int64 `json:"requested_qty"`
	AppliedQty   int64 `json:"applied_qty"`
}

// NewReceiptLineRecordedEvent creates a new receipt line recorded event
func NewReceiptLineRecordedEvent(receipt *GoodsReceipt, line *PurchaseOrderLine, requested, applied int64) *ReceiptLineRecordedEvent {
	return &ReceiptLineRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReceiptLineRecorded, "GoodsReceipt", receipt.ID),
		ReceiptID:       receipt.ID,
		OrderID:         receipt.Order.ID,
		LineNo:          line.LineNo,
		ItemID:          line.Item.ID,
		RequestedQty:    requested,
		AppliedQty:      applied,
	}
}

// InspectionLineAcceptedEvent is raised when an inspection lot accepts
// quantity on a line. Inventory is credited with AppliedQty, never with the
// requested quantity, so the stock ledger matches the lot exactly.
type InspectionLineAcceptedEvent struct {
	shared.BaseDomainEvent
	LotID        int64 `json:"lot_id"`
	ReceiptID    int64 `json:"receipt_id"`
	OrderID      int64 `json:"order_id"`
	LineNo       int   `json:"line_no"`
	ItemID       int64 `json:"item_id"`
	RequestedQty int64 `json:"requested_qty"`
	AppliedQty   int64 `json:"applied_qty"`
}

// NewInspectionLineAcceptedEvent creates a new inspection line accepted event
func NewInspectionLineAcceptedEvent(lot *InspectionLot, lineNo int, requested, applied int64) *InspectionLineAcceptedEvent {
	event := &InspectionLineAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionLineAccepted, "InspectionLot", lot.ID),
		LotID:           lot.ID,
		ReceiptID:       lot.Receipt.ID,
		OrderID:         lot.Receipt.Order.ID,
		LineNo:          lineNo,
		RequestedQty:    requested,
		AppliedQty:      applied,
	}
	if line, err := lot.Receipt.Order.FindLine(lineNo); err == nil {
		event.ItemID = line.Item.ID
	}
	return event
}

// InspectionLineRejectedEvent is raised when an inspection lot rejects
// quantity on a line. The ledger appends RequestedQty; the lot keeps
// AppliedQty.
type InspectionLineRejectedEvent struct {
	shared.BaseDomainEvent
	LotID        int64  `json:"lot_id"`
	ReceiptID    int64  `json:"receipt_id"`
	OrderID      int64  `json:"order_id"`
	LineNo       int    `json:"line_no"`
	RequestedQty int64  `json:"requested_qty"`
	AppliedQty   int64  `json:"applied_qty"`
	Reason       string `json:"reason"`
}

// NewInspectionLineRejectedEvent creates a new inspection line rejected event
func NewInspectionLineRejectedEvent(lot *InspectionLot, lineNo int, requested, applied int64, reason string) *InspectionLineRejectedEvent {
	return &InspectionLineRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInspectionLineRejected, "InspectionLot", lot.ID),
		LotID:           lot.ID,
		ReceiptID:       lot.Receipt.ID,
		OrderID:         lot.Receipt.Order.ID,
		LineNo:          lineNo,
		RequestedQty:    requested,
		AppliedQty:      applied,
		Reason:          reason,
	}
}
