package httpapi

import (
	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

type categoryPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type variantPayload struct {
	ID             int64             `json:"id"`
	ProductID      int64             `json:"productId"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Price          float64           `json:"price"`
	QuantityOnHand int64             `json:"quantityOnHand"`
	StockStatus    string            `json:"stockStatus"`
}

type productPayload struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	BasePrice    float64          `json:"basePrice"`
	ImageURLs    []string         `json:"imageUrls,omitempty"`
	CategoryID   *int64           `json:"categoryId,omitempty"`
	CategoryName string           `json:"categoryName,omitempty"`
	Variants     []variantPayload `json:"variants"`
}

type productListPayload struct {
	Products   []productPayload      `json:"products"`
	Pagination pagination.Pagination `json:"pagination"`
}

type lowStockPayload struct {
	Threshold int              `json:"threshold"`
	Variants  []variantPayload `json:"variants"`
}

func toCategoryPayload(category *domain.Category) categoryPayload {
	return categoryPayload{ID: category.ID, Name: category.Name, Description: category.Description}
}

func toVariantPayload(view catalogapp.VariantView) variantPayload {
	return variantPayload{
		ID:             view.ID,
		ProductID:      view.ProductID,
		SKU:            view.SKU,
		Name:           view.Name,
		Attributes:     view.Attributes,
		Price:          view.Price,
		QuantityOnHand: view.QuantityOnHand,
		StockStatus:    string(view.StockStatus),
	}
}

func toVariantPayloads(views []catalogapp.VariantView) []variantPayload {
	payloads := make([]variantPayload, 0, len(views))
	for _, view := range views {
		payloads = append(payloads, toVariantPayload(view))
	}
	return payloads
}

func toProductPayload(view catalogapp.ProductView) productPayload {
	return productPayload{
		ID:           view.ID,
		Name:         view.Name,
		Description:  view.Description,
		BasePrice:    view.BasePrice,
		ImageURLs:    view.ImageURLs,
		CategoryID:   view.CategoryID,
		CategoryName: view.CategoryName,
		Variants:     toVariantPayloads(view.Variants),
	}
}
