package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a single line item on a receipt.
type Item struct {
	Entity

	// Name is the display name, normalized (trimmed, title-cased).
	Name string `json:"name"`

	// UnitPrice is the price of one unit of this item.
	UnitPrice decimal.Decimal `json:"price"`

	// Category is the spending category, auto-tagged when not supplied.
	Category string `json:"category"`
}

// NewItem builds an Item with a normalized name.
func NewItem(id, name string, unitPrice decimal.Decimal, category string) *Item {
	return &Item{
		Entity:    NewEntity(id),
		Name:      NormalizeName(name),
		UnitPrice: unitPrice,
		Category:  category,
	}
}

// Receipt is the active receipt being split. It owns its items; the
// ledger references them and never copies them by value.
type Receipt struct {
	Entity

	// Items are the line items in insertion order. Order matters: the
	// item resolver's substring matching scans in this order.
	Items []*Item `json:"items"`

	// Subtotal is the sum of item unit prices, recomputed on every
	// item mutation (2-decimal rounding).
	Subtotal decimal.Decimal `json:"subtotal"`

	// Total is the externally supplied grand total. It may exceed
	// Subtotal (tax, service charge) or fall below it after edits;
	// the latter is surfaced as a warning, never rejected.
	Total decimal.Decimal `json:"total"`
}

// NewReceipt builds an empty receipt with the given id and stated total.
func NewReceipt(id string, total decimal.Decimal) *Receipt {
	return &Receipt{Entity: NewEntity(id), Total: total}
}

// Recalculate recomputes the subtotal from the current item set.
func (r *Receipt) Recalculate() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range r.Items {
		sum = sum.Add(it.UnitPrice)
	}
	r.Subtotal = sum.Round(2)
	return r.Subtotal
}

// Surcharge is the part of the stated total not covered by item prices.
// Negative when edits pushed the subtotal above the total.
func (r *Receipt) Surcharge() decimal.Decimal {
	return r.Total.Sub(r.Subtotal)
}

// NormalizeName trims and title-cases a display name. Item and
// participant names go through this exactly once, at creation.
// A fresh Caser per call: cases.Caser carries state and is not safe
// for concurrent use across sessions.
func NormalizeName(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
