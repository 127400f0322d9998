package models

import "time"

// Entity carries the id and timestamp bookkeeping shared by all models.
// It is embedded by value; there is no inheritance hierarchy.
type Entity struct {
	// ID is the unique identifier (opaque string, UUID by default).
	ID string `json:"id"`

	// CreatedAt is when the entity was created (UTC).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every correction edit (UTC).
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntity builds an Entity with the given id and fresh timestamps.
func NewEntity(id string) Entity {
	now := time.Now().UTC()
	return Entity{ID: id, CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes the update timestamp.
func (e *Entity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}
