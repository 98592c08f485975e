package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/procurement/backend/internal/domain/shared"
	"github.com/procurement/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestItemService() *ItemService {
	return NewItemService(shared.NewDefaultSequence(), memory.NewItemRepository(), zap.NewNop())
}

func TestItemService_Register(t *testing.T) {
	service := newTestItemService()

	item, err := service.Register(context.Background(), RegisterItemRequest{Name: "Basmati Rice", Unit: "kg"})
	require.NoError(t, err)

	assert.Equal(t, shared.DefaultSequenceStart, item.ID)
	assert.Equal(t, "Basmati Rice", item.Name)
	assert.Equal(t, "kg", item.Unit)
}

func TestItemService_Register_Validation(t *testing.T) {
	service := newTestItemService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterItemRequest
	}{
		{"empty name", RegisterItemRequest{Unit: "kg"}},
		{"name too long", RegisterItemRequest{Name: strings.Repeat("a", 201)}},
		{"unit too long", RegisterItemRequest{Name: "Rice", Unit: strings.Repeat("a", 21)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.req)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
}

func TestItemService_GetAndList(t *testing.T) {
	service := newTestItemService()
	ctx := context.Background()

	rice, err := service.Register(ctx, RegisterItemRequest{Name: "Rice", Unit: "kg"})
	require.NoError(t, err)
	_, err = service.Register(ctx, RegisterItemRequest{Name: "Beans", Unit: "kg"})
	require.NoError(t, err)

	found, err := service.Get(ctx, rice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", found.Name)

	_, err = service.Get(ctx, 424242)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	all, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Rice", all[0].Name)
}
