// Package extract turns a receipt image (or raw OCR text) into a list
// of (name, price) pairs plus a stated total. The core treats this as
// a black box: it only sees the Result shape or an explicit failure.
package extract

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
)

// ErrConfiguration marks failures caused by missing or invalid setup
// (e.g. no API key). They are surfaced verbatim and never trigger the
// fallback extractor.
var ErrConfiguration = errors.New("extractor configuration error")

// LineItem is one extracted receipt line.
type LineItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Result is the extraction output shape the core consumes.
type Result struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Input carries whichever raw forms of the receipt the caller has.
type Input struct {
	// ImagePNG is the receipt photo, PNG-encoded.
	ImagePNG []byte
	// Text is caller-supplied OCR text, used by the fallback parser.
	Text string
}

// Extractor produces a Result from raw input, or an explicit failure.
// Implementations do not retry; recovery is the caller's decision.
type Extractor interface {
	Extract(ctx context.Context, in Input) (*Result, error)
}

// Chain tries the primary extractor and falls back to the secondary on
// failure. Configuration errors from the primary short-circuit: a
// missing credential should be fixed, not papered over. When both
// extractors fail, both errors are propagated as one.
type Chain struct {
	Primary  Extractor
	Fallback Extractor
}

// Extract implements Extractor.
func (c Chain) Extract(ctx context.Context, in Input) (*Result, error) {
	if c.Primary == nil && c.Fallback == nil {
		return nil, errors.New("no extractors configured")
	}

	var primaryErr error
	if c.Primary != nil {
		res, err := c.Primary.Extract(ctx, in)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}
		primaryErr = err
		slog.Warn("primary extractor failed, trying fallback", "error", err)
	}

	if c.Fallback == nil {
		return nil, primaryErr
	}
	res, err := c.Fallback.Extract(ctx, in)
	if err != nil {
		return nil, errors.Join(primaryErr, err)
	}
	return res, nil
}
