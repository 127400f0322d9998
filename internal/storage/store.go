// Package storage provides abstractions for receipt history
// persistence.
package storage

import (
	"context"
	"errors"

	"github.com/andhikaps/patungan/internal/models"
)

// ErrNotFound is returned when a receipt id has no stored snapshot.
var ErrNotFound = errors.New("receipt not found")

// Store defines the interface for receipt snapshot storage. The core
// never assumes a particular backend; anything that can round-trip the
// models' flat JSON shape qualifies.
type Store interface {
	// SaveReceipt persists a snapshot of the receipt and its items.
	// Saving the same id again overwrites the previous snapshot.
	SaveReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a snapshot by id, items in saved order.
	GetReceipt(ctx context.Context, id string) (*models.Receipt, error)

	// ListReceipts returns all snapshots, newest first.
	ListReceipts(ctx context.Context) ([]*models.Receipt, error)

	// DeleteReceipt removes a snapshot by id.
	DeleteReceipt(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
