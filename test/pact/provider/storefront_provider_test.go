//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"

	catalogmemory "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	catalogdomain "github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	employeesmemory "github.com/retaildesk/storefront-api/internal/domains/employees/adapters/memory"
	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
	"github.com/retaildesk/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/retaildesk/storefront-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/retaildesk/storefront-api/internal/domains/orders/ports"
	httpapi "github.com/retaildesk/storefront-api/internal/transport/http"
	pacttest "github.com/retaildesk/storefront-api/test/pact"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	app := newProviderApp(t)

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.restock(50)
			return nil, nil
		},
		pacttest.StateProductMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.restock(50)
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateVariantDrained: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.restock(0)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type providerApp struct {
	catalog *catalogmemory.Repository
	orders  *ordersmemory.Repository
	server  *httptest.Server
}

func newProviderApp(t testing.TB) *providerApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	settings := catalogmemory.NewSettingsStore()
	settings.Set(catalogdomain.SettingLowStockThreshold, "10")

	product, err := catalogRepo.UpsertProduct(&catalogdomain.Product{
		ID:        pacttest.ExistingProductID,
		Name:      "House Blend",
		BasePrice: 12,
	})
	require.NoError(t, err)
	_, err = catalogRepo.UpsertVariant(&catalogdomain.Variant{
		ID:        pacttest.ExistingVariantID,
		ProductID: product.ID,
		SKU:       "HB-250",
		Name:      "250g",
		Price:     12,
	})
	require.NoError(t, err)
	catalogRepo.SetStock(pacttest.ExistingVariantID, 50)

	ordersRepo := ordersmemory.NewRepository(catalogRepo)

	catalogService := catalogapp.NewService(catalogRepo, settings)
	ordersService := ordersapp.NewService(ordersRepo, catalogbridge.New(catalogRepo))
	employeesService := employeesapp.NewService(
		employeesmemory.NewRepository(),
		employeesmemory.NewSessionStore(),
		employeesapp.DefaultSessionTTL,
	)

	router := httpapi.NewRouter(httpapi.NewHandlers(catalogService, ordersService, employeesService))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &providerApp{catalog: catalogRepo, orders: ordersRepo, server: server}
}

func (a *providerApp) restock(quantity int64) {
	a.catalog.SetStock(pacttest.ExistingVariantID, quantity)
}

// seedOrder places the tracked order directly through the repository so its
// number is deterministic. Placing it twice is fine: the duplicate is
// rejected and the original stays.
func (a *providerApp) seedOrder(t testing.TB) {
	t.Helper()
	order := &ordersdomain.Order{
		Number:        pacttest.ExistingOrderNumber,
		CustomerName:  "Alex",
		CustomerPhone: "555-0100",
		Status:        ordersdomain.StatusPending,
		CreatedAt:     time.Now(),
		Lines: []ordersdomain.Line{
			{VariantID: pacttest.ExistingVariantID, SKU: "HB-250", Name: "250g", Quantity: 2, UnitPrice: 12},
		},
	}
	order.ComputeTotal()
	if _, err := a.orders.Place(context.Background(), order); err != nil {
		require.ErrorIs(t, err, ordersports.ErrDuplicateNumber)
	}
}
