package sqlite

import "database/sql"

// schema sets up the receipt history tables. It runs on startup; every
// statement is idempotent. Prices are stored as decimal strings to
// avoid float drift on round-trip; position preserves item insertion
// order, which the resolver's substring matching depends on.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    id TEXT PRIMARY KEY,
    subtotal TEXT NOT NULL,
    total TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS receipt_items (
    id TEXT PRIMARY KEY,
    receipt_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    category TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt_id ON receipt_items(receipt_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
