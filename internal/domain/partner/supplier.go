package partner

import (
	"github.com/procurement/backend/internal/domain/shared"
)

// Supplier represents a goods supplier in the partner context.
// Suppliers are immutable reference data: once registered they are never
// modified or destroyed during the process lifetime.
type Supplier struct {
	shared.BaseEntity
	Name    string
	Contact string
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(ids *shared.Sequence, name, contact string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if len(contact) > 200 {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Supplier contact cannot exceed 200 characters")
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(ids),
		Name:       name,
		Contact:    contact,
	}, nil
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
