package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/metrics"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// OrderHandler passes order operations through to the remote order service
// with the session's bearer token. The session middleware guarantees an
// authenticated session before any of these run.
type OrderHandler struct {
	orders  ports.OrderAPI
	session ports.Session
}

func NewOrderHandler(orders ports.OrderAPI, session ports.Session) *OrderHandler {
	return &OrderHandler{orders: orders, session: session}
}

type orderItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity"  validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"           validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	Notes           string             `json:"notes"`
}

type payOrderRequest struct {
	Method string `json:"method" validate:"required"`
}

type payOnChainRequest struct {
	WalletAddress   string `json:"walletAddress"   validate:"required"`
	TransactionHash string `json:"transactionHash" validate:"required"`
	Amount          string `json:"amount"          validate:"required"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type listOrdersResponse struct {
	Data       []domain.Order     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (h *OrderHandler) call(op string, err error) error {
	if err != nil {
		metrics.OrderCallsTotal.WithLabelValues(op, "error").Inc()
		return err
	}
	metrics.OrderCallsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

// Create handles POST /v1/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order lines and shipping"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = ports.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	order, err := h.orders.Create(c.Request().Context(), h.session.Token(), ports.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err := h.call("create", err); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /v1/orders?page=&limit=.
//
// @Summary      List orders, paginated
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "1-based page (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  listOrdersResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, limit := 1, 10
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			page = n
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}

	result, err := h.orders.List(c.Request().Context(), h.session.Token(), ports.ListOrdersInput{
		Page:  page,
		Limit: limit,
	})
	if err := h.call("list", err); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
	})
}

// Get handles GET /v1/orders/:id.
//
// @Summary      One order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), h.session.Token(), c.Param("id"))
	if err := h.call("get", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Cancel handles POST /v1/orders/:id/cancel.
//
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c echo.Context) error {
	order, err := h.orders.Cancel(c.Request().Context(), h.session.Token(), c.Param("id"))
	if err := h.call("cancel", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Pay handles POST /v1/orders/:id/pay (fiat).
//
// @Summary      Pay an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Order id"
// @Param        body  body      payOrderRequest  true  "Payment method"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/orders/{id}/pay [post]
func (h *OrderHandler) Pay(c echo.Context) error {
	var req payOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.orders.Pay(c.Request().Context(), h.session.Token(), ports.PayOrderInput{
		OrderID: c.Param("id"),
		Method:  req.Method,
	})
	if err := h.call("pay", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// PayOnChain handles POST /v1/orders/:id/pay/onchain.
//
// @Summary      Settle an order on-chain
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Order id"
// @Param        body  body      payOnChainRequest  true  "Wallet, transaction hash and amount"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/orders/{id}/pay/onchain [post]
func (h *OrderHandler) PayOnChain(c echo.Context) error {
	var req payOnChainRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.orders.PayOnChain(c.Request().Context(), h.session.Token(), ports.PayOnChainInput{
		OrderID:         c.Param("id"),
		WalletAddress:   req.WalletAddress,
		TransactionHash: req.TransactionHash,
		Amount:          req.Amount,
	})
	if err := h.call("pay_onchain", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Tracking handles GET /v1/orders/:id/tracking.
//
// @Summary      Tracking status of an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.OrderTracking
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders/{id}/tracking [get]
func (h *OrderHandler) Tracking(c echo.Context) error {
	tracking, err := h.orders.Tracking(c.Request().Context(), h.session.Token(), c.Param("id"))
	if err := h.call("tracking", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tracking)
}
