package inventory

import (
	"context"

	"github.com/procurement/backend/internal/domain/catalog"
	"github.com/procurement/backend/internal/domain/inventory"
	"go.uber.org/zap"
)

// StockLevel is one row of an inventory snapshot
type StockLevel struct {
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Unit     string `json:"unit"`
	Quantity int64  `json:"quantity"`
}

// InventoryService exposes the stock ledger. Credits come exclusively from
// accepted inspection quantities, so the service performs no clamping of its
// own; that guarantee is established upstream.
type InventoryService struct {
	stock  *inventory.Inventory
	items  catalog.ItemRepository
	logger *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(stock *inventory.Inventory, items catalog.ItemRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		stock:  stock,
		items:  items,
		logger: logger,
	}
}

// CreditStock adds qty to an item's stock
func (s *InventoryService) CreditStock(ctx context.Context, itemID, qty int64) error {
	s.stock.Credit(itemID, qty)
	s.logger.Info("stock credited",
		zap.Int64("item_id", itemID),
		zap.Int64("qty", qty),
		zap.Int64("stock", s.stock.StockOf(itemID)),
	)
	return nil
}

// GetStock returns the current stock for an item, 0 if never credited
func (s *InventoryService) GetStock(ctx context.Context, itemID int64) (int64, error) {
	return s.stock.StockOf(itemID), nil
}

// Snapshot returns the stock level of every catalog item, including items
// that were never credited
func (s *InventoryService) Snapshot(ctx context.Context) ([]StockLevel, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	levels := make([]StockLevel, 0, len(items))
	for _, item := range items {
		levels = append(levels, StockLevel{
			ItemID:   item.ID,
			ItemName: item.Name,
			Unit:     item.Unit,
			Quantity: s.stock.StockOf(item.ID),
		})
	}
	return levels, nil
}
