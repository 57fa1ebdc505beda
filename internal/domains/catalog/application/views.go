package application

import (
	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

// VariantView is a variant enriched with live stock information.
type VariantView struct {
	ID             int64
	ProductID      int64
	SKU            string
	Name           string
	Attributes     map[string]string
	Price          float64
	QuantityOnHand int64
	StockStatus    domain.StockStatus
}

// ProductView joins a product with its variants and resolved category name.
type ProductView struct {
	ID           int64
	Name         string
	Description  string
	BasePrice    float64
	ImageURLs    []string
	CategoryID   *int64
	CategoryName string
	Variants     []VariantView
}

// ProductListing is one page of the catalog.
type ProductListing struct {
	Products   []ProductView
	Pagination pagination.Pagination
}

// LowStockReport lists every variant at or below the configured threshold.
type LowStockReport struct {
	Threshold int
	Variants  []VariantView
}
