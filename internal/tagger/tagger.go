// Package tagger assigns spending categories to receipt item names
// using a static keyword table. It is pure and deterministic: the item
// registry uses it as the default when no explicit category is given.
package tagger

import "strings"

// DefaultCategory is returned when no keyword matches.
const DefaultCategory = "Others"

var keywordCategories = []struct {
	category string
	keywords []string
}{
	{"Food", []string{
		"nasi", "rice", "burger", "mie", "toast", "cake", "bread",
		"pizza", "soup", "chicken", "udang", "pangsit", "siomay",
	}},
	{"Beverage", []string{
		"coffee", "latte", "americano", "tea", "milk", "juice",
		"float", "ice", "korean", "mineral", "mocha",
	}},
	{"Service", []string{"tax", "service", "fee", "charge"}},
	{"Fashion", []string{"shirt", "pants", "bag", "shoe", "jacket", "hat", "dress"}},
	{"Toiletries", []string{
		"soap", "shampo", "toothpaste", "tissue", "micellar",
		"cleanser", "toner", "serum", "perfume",
	}},
	{"Stationery", []string{"pen", "book", "notebook", "pencil", "marker", "eraser"}},
}

// Classify returns the category for an item name. Matching is
// case-insensitive substring search, first table entry wins.
func Classify(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range keywordCategories {
		for _, kw := range entry.keywords {
			if strings.Contains(n, kw) {
				return entry.category
			}
		}
	}
	return DefaultCategory
}
