package catalog

import (
	"github.com/procurement/backend/internal/domain/shared"
)

// Item represents a purchasable good in the catalog.
// Items are immutable reference data with the same lifecycle as suppliers.
type Item struct {
	shared.BaseEntity
	Name string
	Unit string // unit of measure, e.g. kg, pcs, ltr
}

// NewItem creates a new catalog item
func NewItem(ids *shared.Sequence, name, unit string) (*Item, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	if len(unit) > 20 {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit of measure cannot exceed 20 characters")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(ids),
		Name:       name,
		Unit:       unit,
	}, nil
}
