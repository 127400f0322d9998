package calculator

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
)

// Comparison statuses for a price delta row.
const (
	StatusIncreased = "Increased"
	StatusDecreased = "Decreased"
	StatusSame      = "Same"
)

// PriceDelta is one row of a receipt comparison: the same item name on
// both sides, with prices defaulting to zero where the item is missing.
type PriceDelta struct {
	Name     string          `json:"name"`
	PriceOld decimal.Decimal `json:"price_old"`
	PriceNew decimal.Decimal `json:"price_new"`
	Diff     decimal.Decimal `json:"price_diff"`
	Status   string          `json:"status"`
}

// Compare outer-joins two receipts' items by lowercased, trimmed name
// and reports the per-item price movement, sorted by diff descending
// (name ascending on ties). Duplicate names within one receipt are
// summed before joining.
func Compare(a, b *models.Receipt) []PriceDelta {
	old := sumByName(a.Items)
	cur := sumByName(b.Items)

	names := make(map[string]struct{}, len(old)+len(cur))
	for name := range old {
		names[name] = struct{}{}
	}
	for name := range cur {
		names[name] = struct{}{}
	}

	rows := make([]PriceDelta, 0, len(names))
	for name := range names {
		diff := cur[name].Sub(old[name])
		status := StatusSame
		switch {
		case diff.IsPositive():
			status = StatusIncreased
		case diff.IsNegative():
			status = StatusDecreased
		}
		rows = append(rows, PriceDelta{
			Name:     name,
			PriceOld: old[name],
			PriceNew: cur[name],
			Diff:     diff,
			Status:   status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Diff.Equal(rows[j].Diff) {
			return rows[i].Diff.GreaterThan(rows[j].Diff)
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

func sumByName(items []*models.Item) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		name := strings.ToLower(strings.TrimSpace(it.Name))
		out[name] = out[name].Add(it.UnitPrice)
	}
	return out
}
