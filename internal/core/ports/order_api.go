package ports

import (
	"context"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
)

// OrderItemInput is one product line in a new order.
type OrderItemInput struct {
	ProductID int
	Quantity  int
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress string
	Notes           string
}

// ListOrdersInput carries pagination for the order list endpoint.
type ListOrdersInput struct {
	Page  int // 1-based
	Limit int
}

// OrderPage is one page of orders plus pagination metadata.
type OrderPage struct {
	Items []domain.Order
	Page  int
	Limit int
	Total int64
	Pages int
}

// PayOrderInput selects a fiat payment method for an order.
type PayOrderInput struct {
	OrderID string
	Method  string
}

// PayOnChainInput settles an order against an on-chain transaction.
type PayOnChainInput struct {
	OrderID         string
	WalletAddress   string
	TransactionHash string
	Amount          string
}

// OrderAPI is the remote order service: a thin bearer-authenticated
// pass-through. Any non-success response is converted to an error carrying
// the server-provided message or a generic fallback.
type OrderAPI interface {
	Create(ctx context.Context, token string, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, token string, input ListOrdersInput) (*OrderPage, error)
	Get(ctx context.Context, token, orderID string) (*domain.Order, error)
	Cancel(ctx context.Context, token, orderID string) (*domain.Order, error)
	Pay(ctx context.Context, token string, input PayOrderInput) (*domain.Order, error)
	PayOnChain(ctx context.Context, token string, input PayOnChainInput) (*domain.Order, error)
	Tracking(ctx context.Context, token, orderID string) (*domain.OrderTracking, error)
}
