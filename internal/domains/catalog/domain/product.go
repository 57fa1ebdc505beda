package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptySKU      = errors.New("sku is required")
	ErrNegativePrice = errors.New("price must not be negative")
)

// Category groups products for storefront browsing. A product belongs to at
// most one category.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Product is the storefront-facing merchandise entry. Variants carry the
// purchasable SKUs; the product holds shared presentation data and the base
// price a variant falls back to.
type Product struct {
	ID          int64
	Name        string
	Description string
	BasePrice   float64
	ImageURLs   []string
	CategoryID  *int64
}

// Validate enforces product invariants before persistence.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.BasePrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Variant is a purchasable SKU-level instance of a product, e.g. a size or
// color. SKU is unique across the whole catalog.
type Variant struct {
	ID         int64
	ProductID  int64
	SKU        string
	Name       string
	Attributes map[string]string
	Price      float64
}

// Validate enforces variant invariants before persistence.
func (v *Variant) Validate() error {
	if strings.TrimSpace(v.SKU) == "" {
		return ErrEmptySKU
	}
	if v.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// EffectivePrice resolves the price a customer pays: the variant's own price,
// or the product base price when the variant carries none.
func (v *Variant) EffectivePrice(product *Product) float64 {
	if v.Price > 0 {
		return v.Price
	}
	if product != nil {
		return product.BasePrice
	}
	return 0
}

// InventoryLevel tracks quantity on hand per variant. Source data may hold
// zero or negative quantities; the stock policy treats both as out of stock.
type InventoryLevel struct {
	VariantID int64
	Quantity  int64
}
