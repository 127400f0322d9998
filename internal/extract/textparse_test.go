package extract

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTextFallbackExtract(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantErr      bool
		validateFunc func(t *testing.T, res *Result)
	}{
		{
			name: "plain lines with trailing prices",
			text: "Latte 25000\nCake 20000",
			validateFunc: func(t *testing.T, res *Result) {
				if len(res.Items) != 2 {
					t.Fatalf("items = %d, want 2", len(res.Items))
				}
				if res.Items[0].Name != "Latte" || !res.Items[0].Price.Equal(decimal.NewFromInt(25000)) {
					t.Errorf("items[0] = %+v, want Latte 25000", res.Items[0])
				}
				if !res.Total.Equal(decimal.NewFromInt(45000)) {
					t.Errorf("total = %v, want 45000", res.Total)
				}
			},
		},
		{
			name: "thousand separators stripped",
			text: "Nasi Goreng 25.000\nEs Teh 8,000",
			validateFunc: func(t *testing.T, res *Result) {
				if !res.Items[0].Price.Equal(decimal.NewFromInt(25000)) {
					t.Errorf("price = %v, want 25000", res.Items[0].Price)
				}
				if !res.Items[1].Price.Equal(decimal.NewFromInt(8000)) {
					t.Errorf("price = %v, want 8000", res.Items[1].Price)
				}
			},
		},
		{
			name: "lines without numbers skipped",
			text: "WARUNG MAKAN SEJAHTERA\n----------------\nSoup 12000\nThank you!",
			validateFunc: func(t *testing.T, res *Result) {
				if len(res.Items) != 1 {
					t.Fatalf("items = %d, want 1", len(res.Items))
				}
				if res.Items[0].Name != "Soup" {
					t.Errorf("name = %q, want Soup", res.Items[0].Name)
				}
			},
		},
		{
			name:    "empty text errors",
			text:    "   \n  ",
			wantErr: true,
		},
		{
			name:    "no recognizable items errors",
			text:    "hello\nworld",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := TextFallback{}.Extract(context.Background(), Input{Text: tt.text})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validateFunc(t, res)
		})
	}
}
