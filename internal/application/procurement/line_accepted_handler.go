package procurement

import (
	"context"
	"fmt"

	inventoryapp "github.com/procurement/backend/internal/application/inventory"
	"github.com/procurement/backend/internal/domain/procurement"
	"github.com/procurement/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LineAcceptedHandler credits inventory when an inspection lot accepts
// quantity on a line. It uses the event's applied quantity, so the stock
// ledger reflects exactly what the lot recorded after clamping.
type LineAcceptedHandler struct {
	inventoryService *inventoryapp.InventoryService
	logger           *zap.Logger
}

// NewLineAcceptedHandler creates a new handler for inspection acceptances
func NewLineAcceptedHandler(inventoryService *inventoryapp.InventoryService, logger *zap.Logger) *LineAcceptedHandler {
	return &LineAcceptedHandler{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *LineAcceptedHandler) EventTypes() []string {
	return []string{procurement.EventTypeInspectionLineAccepted}
}

// Handle processes an InspectionLineAcceptedEvent
func (h *LineAcceptedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	accepted, ok := event.(*procurement.InspectionLineAcceptedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			procurement.EventTypeInspectionLineAccepted, event.EventType())
	}

	// An over-request fully clamped away credits nothing
	if accepted.AppliedQty == 0 {
		h.logger.Debug("acceptance applied zero quantity, no stock credit",
			zap.Int64("lot_id", accepted.LotID),
			zap.Int("line_no", accepted.LineNo),
		)
		return nil
	}

	if err := h.inventoryService.CreditStock(ctx, accepted.ItemID, accepted.AppliedQty); err != nil {
		h.logger.Error("failed to credit stock for accepted line",
			zap.Int64("lot_id", accepted.LotID),
			zap.Int("line_no", accepted.LineNo),
			zap.Int64("item_id", accepted.ItemID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Ensure LineAcceptedHandler implements shared.EventHandler
var _ shared.EventHandler = (*LineAcceptedHandler)(nil)
