package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
}

// BaseEntity provides common fields for all entities.
// Identity comes from the injected sequence at construction time and never
// changes afterwards.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// NewBaseEntity creates a new base entity with an identifier from ids
func NewBaseEntity(ids *Sequence) BaseEntity {
	return BaseEntity{
		ID:        ids.Next(),
		CreatedAt: time.Now(),
	}
}
