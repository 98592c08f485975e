package procurement

import (
	"github.com/procurement/backend/internal/domain/catalog"
	"github.com/procurement/backend/internal/domain/partner"
	"github.com/procurement/backend/internal/domain/shared"
)

// PurchaseOrderLine is one line of a purchase order. Line numbers are
// 1-based, assigned at append time, and never reused or reordered.
//
// ReceivedQty only ever grows, and never past OrderedQty: crediting clamps
// instead of failing so that reconciliation stays total-preserving even when
// an upstream stage over-reports. Callers that need to detect clamping
// compare the quantity they requested against the applied quantity returned.
type PurchaseOrderLine struct {
	LineNo      int
	Item        *catalog.Item
	OrderedQty  int64
	ReceivedQty int64
}

// OutstandingQty returns the quantity still to be received
func (l *PurchaseOrderLine) OutstandingQty() int64 {
	return l.OrderedQty - l.ReceivedQty
}

// IsFullyReceived returns true if all ordered quantity has been received
func (l *PurchaseOrderLine) IsFullyReceived() bool {
	return l.ReceivedQty >= l.OrderedQty
}

// CreditReceived adds qty to the received quantity, clamped to the
// outstanding quantity. It returns the quantity actually applied.
// A negative qty fails with ErrInvalidQuantity and leaves the line unchanged.
func (l *PurchaseOrderLine) CreditReceived(qty int64) (int64, error) {
	if qty < 0 {
		return 0, shared.ErrInvalidQuantity
	}

	applied := qty
	if outstanding := l.OutstandingQty(); applied > outstanding {
		applied = outstanding
	}
	l.ReceivedQty += applied

	return applied, nil
}

// PurchaseOrder is the aggregate root for an order placed with a supplier.
// Lines are append-only; the order owns them for its whole lifetime.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	Supplier *partner.Supplier
	Lines    []*PurchaseOrderLine
}

// NewPurchaseOrder creates a new purchase order for a supplier
func NewPurchaseOrder(ids *shared.Sequence, supplier *partner.Supplier) (*PurchaseOrder, error) {
	if supplier == nil {
		return nil, shared.ErrUnknownReference
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(ids),
		Supplier:          supplier,
		Lines:             make([]*PurchaseOrderLine, 0),
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddLine appends a new line with the next sequential line number.
// The ordered quantity must be positive.
func (o *PurchaseOrder) AddLine(item *catalog.Item, qty int64) (*PurchaseOrderLine, error) {
	if item == nil {
		return nil, shared.ErrUnknownReference
	}
	if qty <= 0 {
		return nil, shared.ErrInvalidQuantity
	}

	line := &PurchaseOrderLine{
		LineNo:      len(o.Lines) + 1,
		Item:        item,
		OrderedQty:  qty,
		ReceivedQty: 0,
	}
	o.Lines = append(o.Lines, line)

	return line, nil
}

// FindLine returns the line with the given number, or ErrUnknownLine
func (o *PurchaseOrder) FindLine(lineNo int) (*PurchaseOrderLine, error) {
	for _, line := range o.Lines {
		if line.LineNo == lineNo {
			return line, nil
		}
	}
	return nil, shared.ErrUnknownLine
}

// IsFullyReceived returns true if every line has been fully received.
// There is no stored terminal state; closure is always derived.
func (o *PurchaseOrder) IsFullyReceived() bool {
	for _, line := range o.Lines {
		if !line.IsFullyReceived() {
			return false
		}
	}
	return len(o.Lines) > 0
}

// TotalOutstandingQty returns the sum of outstanding quantities over all lines
func (o *PurchaseOrder) TotalOutstandingQty() int64 {
	var total int64
	for _, line := range o.Lines {
		total += line.OutstandingQty()
	}
	return total
}

// LineCount returns the number of lines on the order
func (o *PurchaseOrder) LineCount() int {
	return len(o.Lines)
}
