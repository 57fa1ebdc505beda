package application

import (
	"context"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
)

// OrderItemInput is one requested variant/quantity pair.
type OrderItemInput struct {
	VariantID int64
	Quantity  int64
}

// PlaceOrderInput is the storefront order submission.
type PlaceOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	Notes           string
	Items           []OrderItemInput
}

// Confirmation is returned to the customer after a successful placement.
type Confirmation struct {
	OrderID     int64
	OrderNumber string
	Total       float64
}

// StatusView is the order-tracking projection.
type StatusView struct {
	OrderNumber string
	Status      domain.Status
	Total       float64
}

// Port exposes order use cases to adapters.
type Port interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Confirmation, error)
	OrderStatus(ctx context.Context, orderNumber string) (*StatusView, error)
}
