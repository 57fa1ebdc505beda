package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/memory"
	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

func seedCatalog(t *testing.T) (*memory.Repository, *memory.SettingsStore) {
	t.Helper()
	repo := memory.NewRepository()
	settings := memory.NewSettingsStore()

	coffee := repo.UpsertCategory(&domain.Category{Name: "Coffee"})
	tea := repo.UpsertCategory(&domain.Category{Name: "Tea"})

	blend, err := repo.UpsertProduct(&domain.Product{Name: "House Blend", BasePrice: 12, CategoryID: &coffee.ID})
	require.NoError(t, err)
	sencha, err := repo.UpsertProduct(&domain.Product{Name: "Sencha", BasePrice: 9, CategoryID: &tea.ID})
	require.NoError(t, err)

	small, err := repo.UpsertVariant(&domain.Variant{ProductID: blend.ID, SKU: "HB-250", Name: "250g", Price: 12})
	require.NoError(t, err)
	large, err := repo.UpsertVariant(&domain.Variant{ProductID: blend.ID, SKU: "HB-500", Name: "500g", Price: 20})
	require.NoError(t, err)
	loose, err := repo.UpsertVariant(&domain.Variant{ProductID: sencha.ID, SKU: "SEN-100", Price: 9})
	require.NoError(t, err)

	repo.SetStock(small.ID, 50)
	repo.SetStock(large.ID, 5)
	repo.SetStock(loose.ID, 0)
	return repo, settings
}

func TestListProducts_JoinsVariantsAndStock(t *testing.T) {
	repo, settings := seedCatalog(t)
	svc := NewService(repo, settings)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, listing.Products, 2)
	require.EqualValues(t, 2, listing.Pagination.Total)
	require.Equal(t, 1, listing.Pagination.TotalPages)

	blend := listing.Products[0]
	require.Equal(t, "House Blend", blend.Name)
	require.Equal(t, "Coffee", blend.CategoryName)
	require.Len(t, blend.Variants, 2)
	require.Equal(t, domain.StockIn, blend.Variants[0].StockStatus)
	require.Equal(t, domain.StockLow, blend.Variants[1].StockStatus)

	sencha := listing.Products[1]
	require.Equal(t, domain.StockOut, sencha.Variants[0].StockStatus)
}

func TestListProducts_FiltersByCategory(t *testing.T) {
	repo, settings := seedCatalog(t)
	svc := NewService(repo, settings)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	var teaID int64
	for _, c := range categories {
		if c.Name == "Tea" {
			teaID = c.ID
		}
	}
	require.NotZero(t, teaID)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{CategoryID: &teaID})
	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	require.Equal(t, "Sencha", listing.Products[0].Name)
}

func TestListProducts_Pagination(t *testing.T) {
	repo, settings := seedCatalog(t)
	svc := NewService(repo, settings)

	listing, err := svc.ListProducts(context.Background(), ListProductsInput{Page: pagination.Page{Page: 2, Limit: 1}})
	require.NoError(t, err)
	require.Len(t, listing.Products, 1)
	require.Equal(t, "Sencha", listing.Products[0].Name)
	require.Equal(t, 2, listing.Pagination.TotalPages)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, settings := seedCatalog(t)
	svc := NewService(repo, settings)

	_, err := svc.GetProduct(context.Background(), 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLowStockReport_UsesConfiguredThreshold(t *testing.T) {
	repo, settings := seedCatalog(t)
	svc := NewService(repo, settings)

	report, err := svc.LowStockReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultLowStockThreshold, report.Threshold)
	require.Len(t, report.Variants, 2)
	require.Equal(t, "SEN-100", report.Variants[0].SKU)
	require.Equal(t, domain.StockOut, report.Variants[0].StockStatus)

	settings.Set(domain.SettingLowStockThreshold, "100")
	report, err = svc.LowStockReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, 100, report.Threshold)
	require.Len(t, report.Variants, 3)
}

func TestLowStockReport_BrokenSettingFallsBack(t *testing.T) {
	repo, settings := seedCatalog(t)
	settings.Set(domain.SettingLowStockThreshold, "lots")
	svc := NewService(repo, settings)

	report, err := svc.LowStockReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultLowStockThreshold, report.Threshold)
}
