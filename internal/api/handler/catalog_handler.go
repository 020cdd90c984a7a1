package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// CatalogHandler serves the static product/category data.
type CatalogHandler struct {
	catalog ports.Catalog
}

func NewCatalogHandler(catalog ports.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productPayload struct {
	domain.Product
	Slug  string `json:"slug"`
	Route string `json:"route"`
}

func toProductPayload(p domain.Product) productPayload {
	slug := domain.Slugify(p.Name)
	return productPayload{Product: p, Slug: slug, Route: domain.ProductRoute(slug)}
}

// Products handles GET /v1/catalog/products.
//
// @Summary      All products in catalog order
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  productPayload
// @Router       /v1/catalog/products [get]
func (h *CatalogHandler) Products(c echo.Context) error {
	products := h.catalog.AllProducts()
	payload := make([]productPayload, len(products))
	for i, p := range products {
		payload[i] = toProductPayload(p)
	}
	return c.JSON(http.StatusOK, payload)
}

// Categories handles GET /v1/catalog/categories.
//
// @Summary      Active categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /v1/catalog/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.ActiveCategories())
}

// Category handles GET /v1/catalog/categories/:slug.
//
// @Summary      One category by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/categories/{slug} [get]
func (h *CatalogHandler) Category(c echo.Context) error {
	cat, ok := h.catalog.CategoryBySlug(c.Param("slug"))
	if !ok {
		return domain.ErrCategoryNotFound
	}
	return c.JSON(http.StatusOK, cat)
}

// CategoryProducts handles GET /v1/catalog/categories/:slug/products.
//
// @Summary      Products of one category
// @Tags         catalog
// @Produce      json
// @Param        slug  path     string  true  "Category slug"
// @Success      200   {array}  productPayload
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/categories/{slug}/products [get]
func (h *CatalogHandler) CategoryProducts(c echo.Context) error {
	slug := c.Param("slug")
	if _, ok := h.catalog.CategoryBySlug(slug); !ok {
		return domain.ErrCategoryNotFound
	}
	products := h.catalog.ProductsByCategorySlug(slug)
	payload := make([]productPayload, len(products))
	for i, p := range products {
		payload[i] = toProductPayload(p)
	}
	return c.JSON(http.StatusOK, payload)
}

// Product handles GET /v1/catalog/products/:slug. Slug collisions resolve
// to the first catalog match.
//
// @Summary      One product by derived slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Derived product slug"
// @Success      200   {object}  productPayload
// @Failure      404   {object}  errorResponse
// @Router       /v1/catalog/products/{slug} [get]
func (h *CatalogHandler) Product(c echo.Context) error {
	p, ok := h.catalog.ProductBySlug(c.Param("slug"))
	if !ok {
		return domain.ErrProductNotFound
	}
	return c.JSON(http.StatusOK, toProductPayload(p))
}
