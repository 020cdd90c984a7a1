package domain

import (
	"errors"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")
var ErrCategoryNotFound = errors.New("category not found")

// Product is a single catalog item. The set is statically seeded and
// immutable for the process lifetime.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"` // display string, already currency-formatted
	Image       string `json:"image"`
	Category    string `json:"category"` // matches a Category slug
	Description string `json:"description,omitempty"`
	InStock     bool   `json:"in_stock"`
}

// Category groups products under a URL-safe slug.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
	Active      bool   `json:"active"`
}

// SearchResult is a per-query projection of a Product plus its derived slug.
// It is recomputed on every query change and never persisted.
type SearchResult struct {
	Product Product `json:"product"`
	Slug    string  `json:"slug"`
}

// Slugify derives a URL slug from a product name: lowercased, whitespace
// runs become a single hyphen, everything outside [a-z0-9-] is dropped.
//
// Two distinct names can collapse to the same slug (casing or punctuation
// variants). That ambiguity is part of the routing contract; lookups by
// slug resolve to the first match in catalog order.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-':
			pendingHyphen = true
		}
	}
	return b.String()
}
