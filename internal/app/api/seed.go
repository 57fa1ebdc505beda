package api

import (
	"context"

	catalogmemory "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/memory"
	catalogdomain "github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	employeesmemory "github.com/retaildesk/storefront-api/internal/domains/employees/adapters/memory"
	employeesdomain "github.com/retaildesk/storefront-api/internal/domains/employees/domain"
)

// seedMemory loads the same demo catalog the database seeder applies, plus a
// demo employee for exercising the back-office endpoints locally.
func seedMemory(
	ctx context.Context,
	catalog *catalogmemory.Repository,
	settings *catalogmemory.SettingsStore,
	employees *employeesmemory.Repository,
) error {
	settings.Set(catalogdomain.SettingLowStockThreshold, "10")

	coffee := catalog.UpsertCategory(&catalogdomain.Category{Name: "Coffee", Description: "Whole bean and ground coffee"})
	tea := catalog.UpsertCategory(&catalogdomain.Category{Name: "Tea", Description: "Loose leaf and bagged tea"})

	type demoVariant struct {
		sku   string
		name  string
		price float64
		stock int64
	}
	type demoProduct struct {
		name        string
		description string
		basePrice   float64
		categoryID  *int64
		variants    []demoVariant
	}
	products := []demoProduct{
		{
			name:        "House Blend",
			description: "Medium roast, chocolate and citrus notes",
			basePrice:   12,
			categoryID:  &coffee.ID,
			variants: []demoVariant{
				{sku: "HB-250", name: "250g", price: 12, stock: 120},
				{sku: "HB-1000", name: "1kg", price: 40, stock: 8},
			},
		},
		{
			name:        "Single Origin Dak Lak",
			description: "Robusta, honey processed",
			basePrice:   15,
			categoryID:  &coffee.ID,
			variants: []demoVariant{
				{sku: "DL-250", name: "250g", price: 15, stock: 40},
			},
		},
		{
			name:        "Jasmine Green",
			description: "Scented green tea",
			basePrice:   9,
			categoryID:  &tea.ID,
			variants: []demoVariant{
				{sku: "JG-100", name: "100g", price: 9, stock: 0},
			},
		},
	}
	for _, p := range products {
		product, err := catalog.UpsertProduct(&catalogdomain.Product{
			Name:        p.name,
			Description: p.description,
			BasePrice:   p.basePrice,
			CategoryID:  p.categoryID,
		})
		if err != nil {
			return err
		}
		for _, v := range p.variants {
			variant, err := catalog.UpsertVariant(&catalogdomain.Variant{
				ProductID: product.ID,
				SKU:       v.sku,
				Name:      v.name,
				Price:     v.price,
			})
			if err != nil {
				return err
			}
			catalog.SetStock(variant.ID, v.stock)
		}
	}

	employee, err := employeesdomain.NewEmployee("EMP001", "Demo Operator", "changeme-demo")
	if err != nil {
		return err
	}
	_, err = employees.Save(ctx, employee)
	return err
}
