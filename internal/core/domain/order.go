package domain

import "time"

// Order is the remote order service's record as returned over the wire.
// The order service is a thin pass-through client, so this type carries the
// remote contract (camelCase JSON) rather than a local aggregate.
type Order struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	TotalAmount   string      `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem is a single product line inside an order.
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderTracking is the remote tracking status for an order.
type OrderTracking struct {
	OrderID string    `json:"orderId"`
	Status  string    `json:"status"`
	Updated time.Time `json:"updatedAt"`
}
