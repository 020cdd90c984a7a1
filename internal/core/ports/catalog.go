package ports

import "github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"

// Catalog exposes the static product/category data. Iteration order is part
// of the contract: categories in insertion order, products in per-category
// order. Search results preserve it.
type Catalog interface {
	AllProducts() []domain.Product
	ActiveCategories() []domain.Category
	ProductsByCategorySlug(slug string) []domain.Product
	CategoryBySlug(slug string) (domain.Category, bool)
	// ProductBySlug resolves a derived name slug to the first matching
	// product in catalog order. Slug collisions are not disambiguated.
	ProductBySlug(slug string) (domain.Product, bool)
}
