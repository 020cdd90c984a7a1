package remote

import (
	"context"
	"strings"

	"github.com/guonaihong/gout"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/domain"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// OrderClient is the bearer-authenticated pass-through to the remote order
// service.
type OrderClient struct {
	base string
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{base: strings.TrimRight(baseURL, "/")}
}

type orderItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
	Notes           string             `json:"notes,omitempty"`
}

type payOrderRequest struct {
	Method string `json:"method"`
}

type payOnChainRequest struct {
	WalletAddress   string `json:"walletAddress"`
	TransactionHash string `json:"transactionHash"`
	Amount          string `json:"amount"`
}

type orderPageEnvelope struct {
	Items []domain.Order `json:"items"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
	Pages int            `json:"pages"`
}

func (c *OrderClient) Create(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	items := make([]orderItemRequest, len(input.Items))
	for i, it := range input.Items {
		items[i] = orderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	var order domain.Order
	err := exchange(ctx,
		gout.POST(c.base+"/orders").SetHeader(bearer(token)).SetJSON(createOrderRequest{
			Items:           items,
			ShippingAddress: input.ShippingAddress,
			Notes:           input.Notes,
		}),
		&order,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) List(ctx context.Context, token string, input ports.ListOrdersInput) (*ports.OrderPage, error) {
	var env orderPageEnvelope
	err := exchange(ctx,
		gout.GET(c.base+"/orders").SetHeader(bearer(token)).SetQuery(gout.H{
			"page":  input.Page,
			"limit": input.Limit,
		}),
		&env,
	)
	if err != nil {
		return nil, err
	}
	return &ports.OrderPage{
		Items: env.Items,
		Page:  env.Page,
		Limit: env.Limit,
		Total: env.Total,
		Pages: env.Pages,
	}, nil
}

func (c *OrderClient) Get(ctx context.Context, token, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := exchange(ctx,
		gout.GET(c.base+"/orders/"+orderID).SetHeader(bearer(token)),
		&order,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) Cancel(ctx context.Context, token, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := exchange(ctx,
		gout.POST(c.base+"/orders/"+orderID+"/cancel").SetHeader(bearer(token)),
		&order,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) Pay(ctx context.Context, token string, input ports.PayOrderInput) (*domain.Order, error) {
	var order domain.Order
	err := exchange(ctx,
		gout.POST(c.base+"/orders/"+input.OrderID+"/pay").
			SetHeader(bearer(token)).
			SetJSON(payOrderRequest{Method: input.Method}),
		&order,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) PayOnChain(ctx context.Context, token string, input ports.PayOnChainInput) (*domain.Order, error) {
	var order domain.Order
	err := exchange(ctx,
		gout.POST(c.base+"/orders/"+input.OrderID+"/pay/onchain").
			SetHeader(bearer(token)).
			SetJSON(payOnChainRequest{
				WalletAddress:   input.WalletAddress,
				TransactionHash: input.TransactionHash,
				Amount:          input.Amount,
			}),
		&order,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) Tracking(ctx context.Context, token, orderID string) (*domain.OrderTracking, error) {
	var tracking domain.OrderTracking
	err := exchange(ctx,
		gout.GET(c.base+"/orders/"+orderID+"/tracking").SetHeader(bearer(token)),
		&tracking,
	)
	if err != nil {
		return nil, err
	}
	return &tracking, nil
}
