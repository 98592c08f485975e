package procurement

import (
	"context"
	"fmt"

	"github.com/procurement/backend/internal/domain/procurement"
	"github.com/procurement/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LineRejectedHandler appends the rejection ledger when an inspection lot
// rejects quantity on a line. The ledger records the requested quantity and
// the per-event reason; it is an independent audit trail, never consulted
// for reconciliation.
type LineRejectedHandler struct {
	ids    *shared.Sequence
	orders procurement.PurchaseOrderRepository
	ledger procurement.RejectionRepository
	logger *zap.Logger
}

// NewLineRejectedHandler creates a new handler for inspection rejections
func NewLineRejectedHandler(
	ids *shared.Sequence,
	orders procurement.PurchaseOrderRepository,
	ledger procurement.RejectionRepository,
	logger *zap.Logger,
) *LineRejectedHandler {
	return &LineRejectedHandler{
		ids:    ids,
		orders: orders,
		ledger: ledger,
		logger: logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LineRejectedHandler) EventTypes() []string {
	return []string{procurement.EventTypeInspectionLineRejected}
}

// Handle processes an InspectionLineRejectedEvent
func (h *LineRejectedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	rejected, ok := event.(*procurement.InspectionLineRejectedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			procurement.EventTypeInspectionLineRejected, event.EventType())
	}

	order, err := h.orders.FindByID(ctx, rejected.OrderID)
	if err != nil {
		return err
	}
	line, err := order.FindLine(rejected.LineNo)
	if err != nil {
		return err
	}

	entry, err := procurement.NewRejection(h.ids, line, rejected.RequestedQty, rejected.Reason)
	if err != nil {
		return err
	}
	if err := h.ledger.Append(ctx, entry); err != nil {
		return err
	}

	h.logger.Info("rejection recorded",
		zap.Int64("rejection_id", entry.ID),
		zap.Int64("lot_id", rejected.LotID),
		zap.Int("line_no", rejected.LineNo),
		zap.Int64("requested_qty", rejected.RequestedQty),
		zap.Int64("applied_qty", rejected.AppliedQty),
		zap.String("reason", rejected.Reason),
	)

	return nil
}

// Ensure LineRejectedHandler implements shared.EventHandler
var _ shared.EventHandler = (*LineRejectedHandler)(nil)
