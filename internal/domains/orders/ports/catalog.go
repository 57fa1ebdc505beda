package ports

import (
	"context"
	"errors"
)

// ErrUnknownVariant signals an order item references a variant the catalog
// does not know.
var ErrUnknownVariant = errors.New("unknown variant")

// VariantSnapshot is the catalog view needed to price and pre-check an order
// line: identity, the effective price at this moment, and quantity on hand.
type VariantSnapshot struct {
	ID             int64
	SKU            string
	Name           string
	Price          float64
	QuantityOnHand int64
}

// CatalogGateway resolves order items against the catalog bounded context.
type CatalogGateway interface {
	VariantByID(ctx context.Context, id int64) (*VariantSnapshot, error)
}
