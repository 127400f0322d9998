// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It
// creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveReceipt persists a receipt snapshot, replacing any previous
// snapshot with the same id.
func (s *SQLiteStore) SaveReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now().UTC()
	}
	if receipt.UpdatedAt.IsZero() {
		receipt.UpdatedAt = receipt.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace semantics: drop the old snapshot first. Item rows go
	// with it via the FK cascade.
	if _, err := tx.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", receipt.ID); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO receipts (id, subtotal, total, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		receipt.ID, receipt.Subtotal.String(), receipt.Total.String(),
		receipt.CreatedAt.Unix(), receipt.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	for i, item := range receipt.Items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO receipt_items (id, receipt_id, position, name, price, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			item.ID, receipt.ID, i, item.Name, item.UnitPrice.String(), item.Category,
			item.CreatedAt.Unix(), item.UpdatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetReceipt retrieves a snapshot by id, items in saved order.
func (s *SQLiteStore) GetReceipt(ctx context.Context, id string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	var subtotal, total string
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, subtotal, total, created_at, updated_at FROM receipts WHERE id = ?",
		id,
	).Scan(&receipt.ID, &subtotal, &total, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if receipt.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, fmt.Errorf("failed to parse subtotal: %w", err)
	}
	if receipt.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("failed to parse total: %w", err)
	}
	receipt.CreatedAt = time.Unix(createdAt, 0).UTC()
	receipt.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	if receipt.Items, err = s.loadItems(ctx, receipt.ID); err != nil {
		return nil, err
	}
	return receipt, nil
}

// ListReceipts returns all snapshots, newest first.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM receipts ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan receipt id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	receipts := make([]*models.Receipt, 0, len(ids))
	for _, id := range ids {
		receipt, err := s.GetReceipt(ctx, id)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// DeleteReceipt removes a snapshot by id.
func (s *SQLiteStore) DeleteReceipt(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) loadItems(ctx context.Context, receiptID string) ([]*models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, category, created_at, updated_at FROM receipt_items WHERE receipt_id = ? ORDER BY position",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		var price string
		var createdAt, updatedAt int64
		if err := rows.Scan(&item.ID, &item.Name, &price, &item.Category, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse item price: %w", err)
		}
		item.CreatedAt = time.Unix(createdAt, 0).UTC()
		item.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
