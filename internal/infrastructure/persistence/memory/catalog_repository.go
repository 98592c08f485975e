package memory

import (
	"context"

	"github.com/procurement/backend/internal/domain/catalog"
)

// ItemRepository provides in-memory catalog item storage
type ItemRepository struct {
	store *store[*catalog.Item]
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{store: newStore[*catalog.Item]()}
}

// FindByID returns the item with the given id
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	return r.store.find(id)
}

// FindAll returns all items in registration order
func (r *ItemRepository) FindAll(ctx context.Context) ([]*catalog.Item, error) {
	return r.store.all(), nil
}

// Save stores an item
func (r *ItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	r.store.save(item)
	return nil
}

// Ensure ItemRepository implements the domain interface
var _ catalog.ItemRepository = (*ItemRepository)(nil)
