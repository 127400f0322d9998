package registry

import (
	"strings"

	"github.com/andhikaps/patungan/internal/models"
)

// Resolve maps a loosely-specified item reference to a canonical item.
// The key may be an id, an exact name, or a fragment of a name.
// Resolution order, first match wins:
//
//  1. exact id via the registry index
//  2. exact name, case-insensitive
//  3. substring either way (key in name, or name in key),
//     case-insensitive, checked in insertion order
//  4. linear scan over item ids (safety net for index drift)
//
// A substring collision between two item names resolves to whichever
// item was inserted first; that choice is stable only as long as the
// item set is not rebuilt in a different order. A miss returns
// (nil, false) and is the caller's decision to drop or reject.
func (r *ItemRegistry) Resolve(key string) (*models.Item, bool) {
	if it, ok := r.index[key]; ok {
		return it, true
	}

	lower := strings.ToLower(key)
	for _, it := range r.receipt.Items {
		if strings.ToLower(it.Name) == lower {
			return it, true
		}
	}

	for _, it := range r.receipt.Items {
		name := strings.ToLower(it.Name)
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return it, true
		}
	}

	for _, it := range r.receipt.Items {
		if it.ID == key {
			return it, true
		}
	}

	return nil, false
}
