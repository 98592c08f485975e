package partner

import "context"

// SupplierRepository defines the persistence operations for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (*Supplier, error)
	FindAll(ctx context.Context) ([]*Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
}
