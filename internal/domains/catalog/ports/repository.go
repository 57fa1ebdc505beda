package ports

import (
	"context"
	"errors"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrSettingNotFound   = errors.New("setting not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows and windows product listings.
type ProductFilter struct {
	CategoryID *int64
	Offset     int
	Limit      int
}

// Repository is the read model over the catalog: products, variants,
// categories, and quantity on hand.
type Repository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	VariantsByProduct(ctx context.Context, productIDs []int64) ([]*domain.Variant, error)
	GetVariant(ctx context.Context, id int64) (*domain.Variant, error)
	ListVariants(ctx context.Context) ([]*domain.Variant, error)
	// QuantityOnHand returns quantities keyed by variant id. Variants with no
	// inventory record are absent from the map and read as zero.
	QuantityOnHand(ctx context.Context, variantIDs []int64) (map[int64]int64, error)
}

// SettingsStore reads persisted key-value configuration.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
}
