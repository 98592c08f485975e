package catalog

import "context"

// ItemRepository defines the persistence operations for catalog items
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindAll(ctx context.Context) ([]*Item, error)
	Save(ctx context.Context, item *Item) error
}
