package tagger

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Nasi Goreng", "Food"},
		{"Iced Latte", "Beverage"},
		{"Service Charge", "Service"},
		{"Denim Jacket", "Fashion"},
		{"Micellar Water", "Toiletries"},
		{"Ballpoint Pen", "Stationery"},
		{"Parking Voucher", "Others"},
		{"", "Others"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
