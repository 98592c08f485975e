package memory

import (
	"context"

	"github.com/procurement/backend/internal/domain/partner"
)

// SupplierRepository provides in-memory supplier storage
type SupplierRepository struct {
	store *store[*partner.Supplier]
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{store: newStore[*partner.Supplier]()}
}

// FindByID returns the supplier with the given id
func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	return r.store.find(id)
}

// FindAll returns all suppliers in registration order
func (r *SupplierRepository) FindAll(ctx context.Context) ([]*partner.Supplier, error) {
	return r.store.all(), nil
}

// Save stores a supplier
func (r *SupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	r.store.save(supplier)
	return nil
}

// Ensure SupplierRepository implements the domain interface
var _ partner.SupplierRepository = (*SupplierRepository)(nil)
