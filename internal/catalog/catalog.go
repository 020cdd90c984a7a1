// Package catalog holds the statically seeded storefront data and the query
// helpers over it. The data is immutable for the process lifetime; every
// accessor returns copies so callers cannot mutate the seed.
package catalog

import "github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"

// Catalog is the in-memory catalog provider.
type Catalog struct {
	categories []domain.Category
	products   []domain.Product // catalog order: category insertion order, then per-category order
}

// New builds a catalog from explicit data, mainly for tests.
func New(categories []domain.Category, products []domain.Product) *Catalog {
	return &Catalog{categories: categories, products: products}
}

// Default returns the seeded storefront catalog.
func Default() *Catalog {
	return New(seedCategories, seedProducts)
}

// AllProducts returns every product in catalog order.
func (c *Catalog) AllProducts() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ActiveCategories returns the categories flagged active, in insertion order.
func (c *Catalog) ActiveCategories() []domain.Category {
	out := make([]domain.Category, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.Active {
			out = append(out, cat)
		}
	}
	return out
}

// ProductsByCategorySlug returns the products of one category in order.
// Unknown slugs yield an empty slice.
func (c *Catalog) ProductsByCategorySlug(slug string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

// CategoryBySlug looks up a category by its slug.
func (c *Catalog) CategoryBySlug(slug string) (domain.Category, bool) {
	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return domain.Category{}, false
}

// ProductBySlug resolves a derived name slug to the first matching product
// in catalog order. Distinct names can share a slug; the first one wins.
func (c *Catalog) ProductBySlug(slug string) (domain.Product, bool) {
	for _, p := range c.products {
		if domain.Slugify(p.Name) == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}
