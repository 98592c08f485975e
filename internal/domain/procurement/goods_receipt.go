package procurement

import (
	"sort"

	"github.com/procurement/backend/internal/domain/shared"
)

// GoodsReceipt records one physical-receipt event against a purchase order.
// It keeps its own per-line ledger of what this receipt recorded; crediting
// the order line's received quantity is a separate, explicit step performed
// by the orchestrating service with the applied quantity RecordLine returns,
// so the two ledgers cannot drift apart.
//
// The receipt holds a non-owning reference to its order: the order is owned
// by the registry and outlives the receipt.
type GoodsReceipt struct {
	shared.BaseAggregateRoot
	Order          *PurchaseOrder
	ReceivedByLine map[int]int64
}

// NewGoodsReceipt creates a receipt event against an existing purchase order
func NewGoodsReceipt(ids *shared.Sequence, order *PurchaseOrder) (*GoodsReceipt, error) {
	if order == nil {
		return nil, shared.ErrUnknownReference
	}

	return &GoodsReceipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(ids),
		Order:             order,
		ReceivedByLine:    make(map[int]int64),
	}, nil
}

// RecordLine records a received quantity against one order line and returns
// the quantity actually applied after clamping to the line's outstanding
// quantity. Repeated calls for the same line accumulate.
//
// The clamp uses the order line's outstanding quantity, not the receipt's
// running total; the caller must credit the line with the returned value to
// keep the next clamp accurate.
func (r *GoodsReceipt) RecordLine(lineNo int, qty int64) (int64, error) {
	if qty < 0 {
		return 0, shared.ErrInvalidQuantity
	}

	line, err := r.Order.FindLine(lineNo)
	if err != nil {
		return 0, err
	}

	applied := qty
	if outstanding := line.OutstandingQty(); applied > outstanding {
		applied = outstanding
	}
	r.ReceivedByLine[lineNo] += applied

	r.AddDomainEvent(NewReceiptLineRecordedEvent(r, line, qty, applied))

	return applied, nil
}

// ReceivedForLine returns the total quantity this receipt recorded for a
// line, 0 if the line was never recorded
func (r *GoodsReceipt) ReceivedForLine(lineNo int) int64 {
	return r.ReceivedByLine[lineNo]
}

// LineNumbers returns the recorded line numbers in ascending order
func (r *GoodsReceipt) LineNumbers() []int {
	nums := make([]int, 0, len(r.ReceivedByLine))
	for n := range r.ReceivedByLine {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
