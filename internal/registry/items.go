// Package registry holds the canonical stores for the active receipt's
// line items and the people splitting it, plus the loose-key item
// resolver used by the assignment ledger.
package registry

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
	"github.com/andhikaps/patungan/internal/tagger"
)

// IDSource produces fresh opaque ids. Injected so tests (or embedders
// that want short sequential ids) can control identity; the default is
// a UUID per entity, so concurrent sessions never collide.
type IDSource func() string

// ItemRow is one row of a bulk edit: prices arrive as strings because
// edit surfaces hand back free text.
type ItemRow struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// ItemRegistry owns the receipt's item set. Every mutation recomputes
// the receipt subtotal.
type ItemRegistry struct {
	receipt  *models.Receipt
	index    map[string]*models.Item
	newID    IDSource
	classify func(string) string
}

// NewItemRegistry wraps a receipt. A nil id source defaults to UUIDs,
// a nil classifier defaults to the keyword tagger.
func NewItemRegistry(receipt *models.Receipt, newID IDSource, classify func(string) string) *ItemRegistry {
	if newID == nil {
		newID = uuid.NewString
	}
	if classify == nil {
		classify = tagger.Classify
	}
	r := &ItemRegistry{
		receipt:  receipt,
		index:    make(map[string]*models.Item, len(receipt.Items)),
		newID:    newID,
		classify: classify,
	}
	for _, it := range receipt.Items {
		r.index[it.ID] = it
	}
	receipt.Recalculate()
	return r
}

// AddItem appends a new item. An empty category is filled in by the
// classifier. Negative prices are clamped to zero.
func (r *ItemRegistry) AddItem(name string, unitPrice decimal.Decimal, category string) *models.Item {
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}
	item := models.NewItem(r.newID(), name, unitPrice, category)
	if item.Category == "" {
		item.Category = r.classify(item.Name)
	}
	r.receipt.Items = append(r.receipt.Items, item)
	r.index[item.ID] = item
	r.receipt.Recalculate()
	r.receipt.Touch()
	return item
}

// BulkReplace swaps the entire item set for the given rows, assigning
// fresh ids in input order. Rows with unparseable or negative prices
// are skipped, not fatal: the registry keeps processing the rest.
// Returns the number of rows kept.
func (r *ItemRegistry) BulkReplace(rows []ItemRow) int {
	r.receipt.Items = r.receipt.Items[:0]
	clear(r.index)
	kept := 0
	for _, row := range rows {
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil || price.IsNegative() {
			continue
		}
		r.AddItem(row.Name, price, strings.TrimSpace(row.Category))
		kept++
	}
	r.receipt.Recalculate()
	return kept
}

// Get returns the item with the exact id.
func (r *ItemRegistry) Get(id string) (*models.Item, bool) {
	it, ok := r.index[id]
	return it, ok
}

// Update rewrites name/price/category of an existing item (correction
// edits before assignment begins). Empty fields keep their value.
func (r *ItemRegistry) Update(id, name string, unitPrice *decimal.Decimal, category string) (*models.Item, bool) {
	it, ok := r.index[id]
	if !ok {
		return nil, false
	}
	if name != "" {
		it.Name = models.NormalizeName(name)
	}
	if unitPrice != nil && !unitPrice.IsNegative() {
		it.UnitPrice = *unitPrice
	}
	if category != "" {
		it.Category = category
	}
	it.Touch()
	r.receipt.Recalculate()
	return it, true
}

// Items returns the item set in insertion order. Callers must not
// reorder the slice; resolver determinism depends on it.
func (r *ItemRegistry) Items() []*models.Item {
	return r.receipt.Items
}

// Len reports the number of items.
func (r *ItemRegistry) Len() int {
	return len(r.receipt.Items)
}

// Receipt exposes the wrapped receipt.
func (r *ItemRegistry) Receipt() *models.Receipt {
	return r.receipt
}
