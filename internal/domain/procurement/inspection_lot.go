package procurement

import (
	"github.com/procurement/backend/internal/domain/shared"
)

// InspectionLot records the quality disposition of one goods receipt,
// splitting each line's received quantity into accepted and rejected
// sub-quantities. Both operations clamp silently instead of failing on
// over-requests; the invariant accepted+rejected <= received holds as an
// emergent property of the two clamp formulas rather than an assertion.
//
// Only the latest rejection reason per line is kept on the lot; the
// rejection ledger preserves per-event reasons.
type InspectionLot struct {
	shared.BaseAggregateRoot
	Receipt        *GoodsReceipt
	AcceptedByLine map[int]int64
	RejectedByLine map[int]int64
	ReasonByLine   map[int]string
}

// NewInspectionLot creates an inspection lot against an existing goods receipt
func NewInspectionLot(ids *shared.Sequence, receipt *GoodsReceipt) (*InspectionLot, error) {
	if receipt == nil {
		return nil, shared.ErrUnknownReference
	}

	return &InspectionLot{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(ids),
		Receipt:           receipt,
		AcceptedByLine:    make(map[int]int64),
		RejectedByLine:    make(map[int]int64),
		ReasonByLine:      make(map[int]string),
	}, nil
}

// AcceptLine accepts qty units of a line, clamped to the room left between
// the receipt's recorded quantity and what this lot already accepted.
// Returns the quantity actually accepted. Lines the receipt never recorded
// have zero room, so accepting against them records nothing.
func (l *InspectionLot) AcceptLine(lineNo int, qty int64) (int64, error) {
	if qty < 0 {
		return 0, shared.ErrInvalidQuantity
	}

	room := l.Receipt.ReceivedForLine(lineNo) - l.AcceptedByLine[lineNo]
	if room < 0 {
		room = 0
	}

	applied := qty
	if applied > room {
		applied = room
	}
	l.AcceptedByLine[lineNo] += applied

	l.AddDomainEvent(NewInspectionLineAcceptedEvent(l, lineNo, qty, applied))

	return applied, nil
}

// RejectLine rejects qty units of a line with a reason, clamped to the room
// left after prior acceptances and rejections. Returns the quantity actually
// rejected. The stored reason is overwritten by every call, including calls
// whose applied quantity is zero.
func (l *InspectionLot) RejectLine(lineNo int, qty int64, reason string) (int64, error) {
	if qty < 0 {
		return 0, shared.ErrInvalidQuantity
	}

	room := l.Receipt.ReceivedForLine(lineNo) - l.RejectedByLine[lineNo] - l.AcceptedByLine[lineNo]
	if room < 0 {
		room = 0
	}

	applied := qty
	if applied > room {
		applied = room
	}
	l.RejectedByLine[lineNo] += applied
	l.ReasonByLine[lineNo] = reason

	l.AddDomainEvent(NewInspectionLineRejectedEvent(l, lineNo, qty, applied, reason))

	return applied, nil
}

// AcceptedForLine returns the total accepted quantity for a line, 0 by default
func (l *InspectionLot) AcceptedForLine(lineNo int) int64 {
	return l.AcceptedByLine[lineNo]
}

// RejectedForLine returns the total rejected quantity for a line, 0 by default
func (l *InspectionLot) RejectedForLine(lineNo int) int64 {
	return l.RejectedByLine[lineNo]
}

// ReasonForLine returns the most recent rejection reason recorded for a line
func (l *InspectionLot) ReasonForLine(lineNo int) string {
	return l.ReasonByLine[lineNo]
}

// UndisposedForLine returns the received quantity not yet accepted or rejected
func (l *InspectionLot) UndisposedForLine(lineNo int) int64 {
	remaining := l.Receipt.ReceivedForLine(lineNo) - l.AcceptedByLine[lineNo] - l.RejectedByLine[lineNo]
	if remaining < 0 {
		return 0
	}
	return remaining
}
