package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/handler"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/middleware"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// Deps carries everything the router needs, already constructed by the
// composition root.
type Deps struct {
	Catalog ports.Catalog
	Search  ports.Search
	History ports.History
	Session ports.Session
	Orders  ports.OrderAPI
	Chat    ports.Chat
	Store   ports.KeyValueStore
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	searchHandler := handler.NewSearchHandler(d.Search, d.History)
	sessionHandler := handler.NewSessionHandler(d.Session)
	orderHandler := handler.NewOrderHandler(d.Orders, d.Session)
	chatHandler := handler.NewChatHandler(d.Chat)

	// --- Catalog ---
	e.GET("/v1/catalog/products", catalogHandler.Products)
	e.GET("/v1/catalog/products/:slug", catalogHandler.Product)
	e.GET("/v1/catalog/categories", catalogHandler.Categories)
	e.GET("/v1/catalog/categories/:slug", catalogHandler.Category)
	e.GET("/v1/catalog/categories/:slug/products", catalogHandler.CategoryProducts)

	// --- Search ---
	e.GET("/v1/search", searchHandler.Query)
	e.POST("/v1/search/commit", searchHandler.Commit)
	e.GET("/v1/search/history", searchHandler.History)
	e.DELETE("/v1/search/history", searchHandler.HistoryClear)
	e.DELETE("/v1/search/history/:query", searchHandler.HistoryRemove)

	// --- Session ---
	e.POST("/v1/auth/login", sessionHandler.Login)
	e.POST("/v1/auth/register", sessionHandler.Register)
	e.POST("/v1/auth/logout", sessionHandler.Logout)
	e.GET("/v1/auth/me", sessionHandler.Me)
	e.PATCH("/v1/auth/profile", sessionHandler.UpdateProfile)

	// --- Orders (authenticated pass-through) ---
	orders := e.Group("/v1/orders", middleware.RequireSession(d.Session))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.POST("/:id/pay", orderHandler.Pay)
	orders.POST("/:id/pay/onchain", orderHandler.PayOnChain)
	orders.GET("/:id/tracking", orderHandler.Tracking)

	// --- Chat ---
	e.POST("/v1/chat", chatHandler.Send)

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Store)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness: is storage reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
