package models

import "github.com/shopspring/decimal"

// Assignment records one participant's claim on some count of units of
// one item. Several participants may hold independent claims against
// the same item; nothing caps the cumulative count across claims.
// Over- and under-assignment are surfaced as warnings by the
// settlement calculator, not rejected here.
type Assignment struct {
	// ParticipantID identifies the claimant.
	ParticipantID string `json:"participant_id"`

	// Item is a reference to the registry-owned item.
	Item *Item `json:"item"`

	// Count is the number of units claimed. Always >= 1.
	Count int `json:"count"`
}

// TotalPrice is unit price times claimed count, rounded to 2 decimals.
func (a *Assignment) TotalPrice() decimal.Decimal {
	return a.Item.UnitPrice.Mul(decimal.NewFromInt(int64(a.Count))).Round(2)
}
