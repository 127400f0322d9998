// Package calculator derives settled per-participant amounts from the
// assignment ledger, and computes the pure item-list analytics
// (category summaries, breakdowns, receipt comparison, insights).
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andhikaps/patungan/internal/ledger"
	"github.com/andhikaps/patungan/internal/models"
)

// ShareItem is one claimed item inside a participant's share.
type ShareItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
}

// PersonShare is one participant's settled share of the receipt.
type PersonShare struct {
	ParticipantID string          `json:"participant_id"`
	Name          string          `json:"name"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Proportion    decimal.Decimal `json:"proportion"`
	Total         decimal.Decimal `json:"total"`
	Items         []ShareItem     `json:"items"`
}

// SettlementReport is the full settlement for one receipt.
type SettlementReport struct {
	Shares    []PersonShare   `json:"shares"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	Surcharge decimal.Decimal `json:"surcharge"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// GrandTotal sums the per-participant finals. By construction it
// approximates the receipt total, diverging by at most one cent per
// participant from per-share rounding; the gap is accepted, not
// redistributed.
func (r *SettlementReport) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range r.Shares {
		sum = sum.Add(s.Total)
	}
	return sum.Round(2)
}

// Settle computes each participant's subtotal and proportional final
// total. The surcharge (or discount) embedded in total - subtotal is
// distributed pro-rata by item spend: heavier spenders absorb
// proportionally more tax. A zero receipt subtotal defines every
// proportion as zero instead of dividing.
func Settle(receipt *models.Receipt, led *ledger.Ledger) *SettlementReport {
	report := &SettlementReport{
		Subtotal:  receipt.Subtotal,
		Total:     receipt.Total,
		Surcharge: receipt.Surcharge(),
	}

	zeroSubtotal := receipt.Subtotal.IsZero()
	for _, p := range led.Participants().All() {
		subtotal := led.ParticipantSubtotal(p.ID)

		proportion := decimal.Zero
		if !zeroSubtotal {
			proportion = subtotal.Div(receipt.Subtotal)
		}

		records := led.AssignmentsFor(p.ID)
		items := make([]ShareItem, len(records))
		for i, a := range records {
			items[i] = ShareItem{
				Name:      a.Item.Name,
				UnitPrice: a.Item.UnitPrice,
				Count:     a.Count,
				Total:     a.TotalPrice(),
			}
		}

		report.Shares = append(report.Shares, PersonShare{
			ParticipantID: p.ID,
			Name:          p.Name,
			Subtotal:      subtotal,
			Proportion:    proportion,
			Total:         proportion.Mul(receipt.Total).Round(2),
			Items:         items,
		})
	}

	report.Warnings = settlementWarnings(receipt, led)
	return report
}

// settlementWarnings surfaces the conditions the model deliberately
// tolerates: a stated total below the item subtotal, and items whose
// cumulative claimed count is not exactly one unit.
func settlementWarnings(receipt *models.Receipt, led *ledger.Ledger) []string {
	var warnings []string
	if receipt.Total.LessThan(receipt.Subtotal) {
		warnings = append(warnings, fmt.Sprintf(
			"receipt total %s is below item subtotal %s",
			receipt.Total.StringFixed(2), receipt.Subtotal.StringFixed(2)))
	}
	for _, it := range receipt.Items {
		switch count := led.TotalAssignedCount(it.ID); {
		case count == 0:
			warnings = append(warnings, fmt.Sprintf("item %q is unassigned", it.Name))
		case count > 1:
			warnings = append(warnings, fmt.Sprintf("item %q is claimed %d times", it.Name, count))
		}
	}
	return warnings
}
