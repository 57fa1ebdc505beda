// Package catalogbridge adapts the catalog bounded context to the narrow
// gateway the order service needs for pricing and stock pre-checks.
package catalogbridge

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
	ordersports "github.com/retaildesk/storefront-api/internal/domains/orders/ports"
)

var _ ordersports.CatalogGateway = (*Gateway)(nil)

// Gateway resolves variant snapshots from the catalog repository.
type Gateway struct {
	catalog catalogports.Repository
}

func New(catalog catalogports.Repository) *Gateway {
	return &Gateway{catalog: catalog}
}

// VariantByID returns the variant with its effective price and quantity on
// hand. A variant with no inventory record reads as zero on hand.
func (g *Gateway) VariantByID(ctx context.Context, id int64) (*ordersports.VariantSnapshot, error) {
	variant, err := g.catalog.GetVariant(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrVariantNotFound) {
			return nil, fmt.Errorf("%w: variant %d", ordersports.ErrUnknownVariant, id)
		}
		return nil, err
	}
	price := variant.Price
	if price <= 0 {
		product, err := g.catalog.GetProduct(ctx, variant.ProductID)
		if err != nil && !errors.Is(err, catalogports.ErrProductNotFound) {
			return nil, err
		}
		price = variant.EffectivePrice(product)
	}
	quantities, err := g.catalog.QuantityOnHand(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	name := variant.Name
	if name == "" {
		name = variant.SKU
	}
	return &ordersports.VariantSnapshot{
		ID:             variant.ID,
		SKU:            variant.SKU,
		Name:           name,
		Price:          price,
		QuantityOnHand: quantities[id],
	}, nil
}
