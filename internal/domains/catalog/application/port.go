package application

import (
	"context"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

// ListProductsInput selects and windows the product listing.
type ListProductsInput struct {
	CategoryID *int64
	Page       pagination.Page
}

// Port exposes catalog use cases to adapters.
type Port interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListing, error)
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	LowStockReport(ctx context.Context) (*LowStockReport, error)
}
