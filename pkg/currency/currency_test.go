package currency

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatUnknownCodeFallsBack(t *testing.T) {
	got := Format(decimal.NewFromInt(10), "???")
	if got != "??? 10.00" {
		t.Errorf("Format = %q, want fallback %q", got, "??? 10.00")
	}
}

func TestFormatSupportedCodesNeverEmpty(t *testing.T) {
	amount := decimal.NewFromInt(49500)
	for code := range Supported {
		if got := Format(amount, code); strings.TrimSpace(got) == "" {
			t.Errorf("Format(%s) returned empty string", code)
		}
	}
}

func TestFormatterBindsCode(t *testing.T) {
	f := Formatter("???")
	if got := f(decimal.NewFromInt(5)); got != "??? 5.00" {
		t.Errorf("formatter = %q, want %q", got, "??? 5.00")
	}
}
