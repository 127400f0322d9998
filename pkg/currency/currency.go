// Package currency renders raw decimal amounts as display strings.
// The core always computes on raw decimals and never formats money
// itself; this is the one place a currency code meets an amount.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported maps the currency codes the UI offers to display names.
var Supported = map[string]string{
	"IDR": "Indonesian Rupiah",
	"USD": "US Dollar",
	"EUR": "Euro",
	"JPY": "Japanese Yen",
	"GBP": "British Pound",
	"SGD": "Singapore Dollar",
	"MYR": "Malaysian Ringgit",
	"THB": "Thai Baht",
}

// Format renders an amount with its currency symbol and grouped
// digits, e.g. Format(d(49500), "IDR") -> "IDR 49,500.00". Unknown
// codes fall back to a plain "CODE amount" rendering rather than
// failing: display formatting must never break a report.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}
	value, _ := amount.Float64()
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}

// Formatter returns a formatting closure bound to one currency code,
// handy for the insight answerer which takes a format function.
func Formatter(code string) func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return Format(amount, code)
	}
}
