package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
)

func receiptOf(rows map[string]float64) *models.Receipt {
	r := models.NewReceipt("r", decimal.Zero)
	for name, price := range rows {
		r.Items = append(r.Items, models.NewItem(name, name, decimal.NewFromFloat(price), "Others"))
	}
	r.Recalculate()
	r.Total = r.Subtotal
	return r
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name         string
		old, current map[string]float64
		validateFunc func(t *testing.T, rows []PriceDelta)
	}{
		{
			name:    "price increase",
			old:     map[string]float64{"Tea": 10},
			current: map[string]float64{"Tea": 12},
			validateFunc: func(t *testing.T, rows []PriceDelta) {
				if len(rows) != 1 {
					t.Fatalf("rows = %d, want 1", len(rows))
				}
				row := rows[0]
				if row.Name != "tea" {
					t.Errorf("name = %q, want %q", row.Name, "tea")
				}
				if !row.PriceOld.Equal(d(10)) || !row.PriceNew.Equal(d(12)) {
					t.Errorf("prices = %v -> %v, want 10 -> 12", row.PriceOld, row.PriceNew)
				}
				if !row.Diff.Equal(d(2)) {
					t.Errorf("diff = %v, want 2", row.Diff)
				}
				if row.Status != StatusIncreased {
					t.Errorf("status = %q, want %q", row.Status, StatusIncreased)
				}
			},
		},
		{
			name:    "item missing from one side joins at zero",
			old:     map[string]float64{"Tea": 10},
			current: map[string]float64{"Coffee": 15},
			validateFunc: func(t *testing.T, rows []PriceDelta) {
				if len(rows) != 2 {
					t.Fatalf("rows = %d, want 2", len(rows))
				}
				// Sorted by diff descending: Coffee (+15) first.
				if rows[0].Name != "coffee" || rows[0].Status != StatusIncreased {
					t.Errorf("rows[0] = %+v, want increased coffee", rows[0])
				}
				if rows[1].Name != "tea" || rows[1].Status != StatusDecreased {
					t.Errorf("rows[1] = %+v, want decreased tea", rows[1])
				}
				if !rows[1].PriceNew.IsZero() {
					t.Errorf("missing item price = %v, want 0", rows[1].PriceNew)
				}
			},
		},
		{
			name:    "unchanged price reports Same",
			old:     map[string]float64{"Rice": 8},
			current: map[string]float64{"Rice": 8},
			validateFunc: func(t *testing.T, rows []PriceDelta) {
				if rows[0].Status != StatusSame || !rows[0].Diff.IsZero() {
					t.Errorf("row = %+v, want Same with zero diff", rows[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Compare(receiptOf(tt.old), receiptOf(tt.current)))
		})
	}
}

func TestCompareSumsDuplicateNames(t *testing.T) {
	old := models.NewReceipt("r", decimal.Zero)
	old.Items = append(old.Items,
		models.NewItem("1", "Tea", d(5), "Beverage"),
		models.NewItem("2", "tea", d(5), "Beverage"),
	)
	old.Recalculate()

	rows := Compare(old, receiptOf(map[string]float64{"Tea": 12}))
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if !rows[0].PriceOld.Equal(d(10)) {
		t.Errorf("old price = %v, want summed 10", rows[0].PriceOld)
	}
}
