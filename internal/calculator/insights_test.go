package calculator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
)

func insightReceipt() *models.Receipt {
	r := models.NewReceipt("r", d(49500))
	r.Items = append(r.Items,
		models.NewItem("1", "Latte", d(25000), "Beverage"),
		models.NewItem("2", "Cake", d(20000), "Food"),
	)
	r.Recalculate()
	return r
}

func TestCategorySummary(t *testing.T) {
	rows := CategorySummary(insightReceipt())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Category != "Beverage" || !rows[0].TotalSpent.Equal(d(25000)) {
		t.Errorf("rows[0] = %+v, want Beverage 25000", rows[0])
	}
	if rows[1].Category != "Food" || !rows[1].TotalSpent.Equal(d(20000)) {
		t.Errorf("rows[1] = %+v, want Food 20000", rows[1])
	}
}

func TestPercentageBreakdown(t *testing.T) {
	rows := PercentageBreakdown(insightReceipt())
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Percentage)
	}
	if sum.Sub(d(100)).Abs().GreaterThan(d(0.02)) {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
	if !rows[0].Percentage.Equal(d(55.56)) {
		t.Errorf("top share = %v, want 55.56", rows[0].Percentage)
	}
}

func TestPercentageBreakdownEmptyReceipt(t *testing.T) {
	if rows := PercentageBreakdown(models.NewReceipt("r", decimal.Zero)); len(rows) != 0 {
		t.Errorf("rows = %v, want empty", rows)
	}
}

func TestMostExpensive(t *testing.T) {
	if top := MostExpensive(insightReceipt()); top == nil || top.Name != "Latte" {
		t.Errorf("top = %+v, want Latte", top)
	}
	if top := MostExpensive(models.NewReceipt("r", decimal.Zero)); top != nil {
		t.Errorf("top = %+v, want nil for empty receipt", top)
	}
}

func TestAnswer(t *testing.T) {
	plain := func(amount decimal.Decimal) string { return amount.StringFixed(2) }
	receipt := insightReceipt()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"most expensive item", "what is the most expensive item?", "Latte"},
		{"total spending", "how much did I spend in total?", "49500.00"},
		{"top category", "which category cost the most?", "Beverage"},
		{"average price", "what is the average price?", "22500.00"},
		{"item count", "how many items are there?", "2 items"},
		{"unknown question", "what's the weather like?", "can't answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Answer(receipt, tt.query, plain)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Answer(%q) = %q, want it to mention %q", tt.query, got, tt.want)
			}
		})
	}
}
