package procurement

import (
	"github.com/procurement/backend/internal/domain/shared"
)

// Rejection is one entry of the append-only rejection ledger. It records the
// quantity the inspector asked to reject, which may exceed what the lot
// actually recorded after clamping; the ledger is an independent audit
// record and is never consulted for reconciliation math.
type Rejection struct {
	shared.BaseEntity
	Line     *PurchaseOrderLine
	Quantity int64
	Reason   string
}

// NewRejection creates an immutable rejection ledger entry
func NewRejection(ids *shared.Sequence, line *PurchaseOrderLine, qty int64, reason string) (*Rejection, error) {
	if line == nil {
		return nil, shared.ErrUnknownReference
	}
	if qty < 0 {
		return nil, shared.ErrInvalidQuantity
	}

	return &Rejection{
		BaseEntity: shared.NewBaseEntity(ids),
		Line:       line,
		Quantity:   qty,
		Reason:     reason,
	}, nil
}
