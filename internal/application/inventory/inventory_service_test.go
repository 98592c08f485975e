package inventory

import (
	"context"
	"testing"

	"github.com/procurement/backend/internal/domain/catalog"
	"github.com/procurement/backend/internal/domain/inventory"
	"github.com/procurement/backend/internal/domain/shared"
	"github.com/procurement/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInventoryService(t *testing.T) (*InventoryService, *memory.ItemRepository, *shared.Sequence) {
	t.Helper()
	items := memory.NewItemRepository()
	service := NewInventoryService(inventory.NewInventory(), items, zap.NewNop())
	return service, items, shared.NewDefaultSequence()
}

func seedItem(t *testing.T, ids *shared.Sequence, items *memory.ItemRepository, name string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(ids, name, "kg")
	require.NoError(t, err)
	require.NoError(t, items.Save(context.Background(), item))
	return item
}

func TestInventoryService_CreditAndGetStock(t *testing.T) {
	service, items, ids := newTestInventoryService(t)
	ctx := context.Background()
	item := seedItem(t, ids, items, "Rice")

	require.NoError(t, service.CreditStock(ctx, item.ID, 4))
	require.NoError(t, service.CreditStock(ctx, item.ID, 3))

	stock, err := service.GetStock(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stock)
}

func TestInventoryService_GetStock_UncreditedItemIsZero(t *testing.T) {
	service, _, _ := newTestInventoryService(t)

	stock, err := service.GetStock(context.Background(), 9999)
	require.NoError(t, err, "an unknown item is not an error")
	assert.Zero(t, stock)
}

func TestInventoryService_Snapshot_IncludesUncreditedItems(t *testing.T) {
	service, items, ids := newTestInventoryService(t)
	ctx := context.Background()

	rice := seedItem(t, ids, items, "Rice")
	beans := seedItem(t, ids, items, "Beans")
	require.NoError(t, service.CreditStock(ctx, rice.ID, 5))

	levels, err := service.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, rice.ID, levels[0].ItemID)
	assert.Equal(t, int64(5), levels[0].Quantity)
	assert.Equal(t, beans.ID, levels[1].ItemID)
	assert.Zero(t, levels[1].Quantity, "never-credited items appear at zero")
}
