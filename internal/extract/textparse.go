package extract

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// lineExpr captures "item name 25.000" style receipt lines: anything
// followed by a trailing number. Thousand separators (both ',' and
// '.') are stripped before parsing, matching how local receipts print
// whole-rupiah amounts.
var lineExpr = regexp.MustCompile(`^(.*?)(\d[\d.,]*)\s*$`)

// TextFallback parses caller-supplied OCR text line by line. It is the
// offline fallback when the AI extractor fails: crude, but it never
// needs credentials. Lines without a trailing number are skipped; the
// total is the sum of parsed prices.
type TextFallback struct{}

// Extract implements Extractor.
func (TextFallback) Extract(_ context.Context, in Input) (*Result, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("text fallback: no OCR text supplied")
	}

	res := &Result{}
	for _, line := range strings.Split(in.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := lineExpr.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		digits := strings.NewReplacer(",", "", ".", "").Replace(m[2])
		price, err := decimal.NewFromString(digits)
		if err != nil {
			continue
		}
		res.Items = append(res.Items, LineItem{Name: name, Price: price})
		res.Total = res.Total.Add(price)
	}

	if len(res.Items) == 0 {
		return nil, fmt.Errorf("text fallback: no items recognized")
	}
	return res, nil
}
