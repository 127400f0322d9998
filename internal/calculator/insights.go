package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/models"
)

// CategoryTotal is total spend within one category.
type CategoryTotal struct {
	Category   string          `json:"category"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// CategoryShare is a category total plus its percentage of the summed
// item spend.
type CategoryShare struct {
	CategoryTotal
	Percentage decimal.Decimal `json:"percentage"`
}

// CategorySummary sums item spend per category, sorted by amount
// descending (category name breaks ties, for stable output).
func CategorySummary(receipt *models.Receipt) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, it := range receipt.Items {
		if _, seen := totals[it.Category]; !seen {
			order = append(order, it.Category)
		}
		totals[it.Category] = totals[it.Category].Add(it.UnitPrice)
	}

	rows := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		rows = append(rows, CategoryTotal{Category: cat, TotalSpent: totals[cat].Round(2)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].TotalSpent.Equal(rows[j].TotalSpent) {
			return rows[i].TotalSpent.GreaterThan(rows[j].TotalSpent)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// PercentageBreakdown extends the category summary with each
// category's percentage of the summed spend, rounded to 2 decimals.
func PercentageBreakdown(receipt *models.Receipt) []CategoryShare {
	summary := CategorySummary(receipt)

	total := decimal.Zero
	for _, row := range summary {
		total = total.Add(row.TotalSpent)
	}

	hundred := decimal.NewFromInt(100)
	rows := make([]CategoryShare, len(summary))
	for i, row := range summary {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = row.TotalSpent.Div(total).Mul(hundred).Round(2)
		}
		rows[i] = CategoryShare{CategoryTotal: row, Percentage: pct}
	}
	return rows
}

// MostExpensive returns the priciest item, or nil for an empty receipt.
// Ties keep the earlier item.
func MostExpensive(receipt *models.Receipt) *models.Item {
	var top *models.Item
	for _, it := range receipt.Items {
		if top == nil || it.UnitPrice.GreaterThan(top.UnitPrice) {
			top = it
		}
	}
	return top
}

// AveragePrice is the mean item price, zero for an empty receipt.
func AveragePrice(receipt *models.Receipt) decimal.Decimal {
	if len(receipt.Items) == 0 {
		return decimal.Zero
	}
	return receipt.Subtotal.Div(decimal.NewFromInt(int64(len(receipt.Items)))).Round(2)
}

// Answer handles the handful of natural-language questions the insight
// assistant understands, by keyword. format renders amounts for
// display; the calculator itself never formats money. Unknown
// questions get an honest fallback sentence.
func Answer(receipt *models.Receipt, query string, format func(decimal.Decimal) string) string {
	q := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.Contains(q, "expensive"):
		top := MostExpensive(receipt)
		if top == nil {
			return "No items detected in this receipt."
		}
		return fmt.Sprintf("The most expensive item is %s, priced at %s.", top.Name, format(top.UnitPrice))

	case strings.Contains(q, "total") || strings.Contains(q, "spent"):
		return fmt.Sprintf("Your total spending is %s.", format(receipt.Total))

	case strings.Contains(q, "category") || strings.Contains(q, "most"):
		summary := CategorySummary(receipt)
		if len(summary) == 0 {
			return "No items detected in this receipt."
		}
		return fmt.Sprintf("You spent the most on %s, totaling %s.", summary[0].Category, format(summary[0].TotalSpent))

	case strings.Contains(q, "average"):
		return fmt.Sprintf("The average item price is %s.", format(AveragePrice(receipt)))

	case strings.Contains(q, "how many") || strings.Contains(q, "count"):
		return fmt.Sprintf("There are %d items in this receipt.", len(receipt.Items))

	default:
		return "I can't answer that yet, but I can show your spending insights."
	}
}
