//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	"github.com/retaildesk/storefront-api/pkg/client"
	pacttest "github.com/retaildesk/storefront-api/test/pact"
)

func TestStorefrontPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	variantMatcher := matchers.Map{
		"id":             matchers.Like(pacttest.ExistingVariantID),
		"productId":      matchers.Like(pacttest.ExistingProductID),
		"sku":            matchers.Like("HB-250"),
		"price":          matchers.Like(12.0),
		"quantityOnHand": matchers.Like(50),
		"stockStatus":    matchers.Term("IN_STOCK", "IN_STOCK|LOW_STOCK|OUT_OF_STOCK"),
	}
	productMatcher := matchers.Map{
		"id":        matchers.Like(pacttest.ExistingProductID),
		"name":      matchers.Like("House Blend"),
		"basePrice": matchers.Like(12.0),
		"variants":  matchers.EachLike(variantMatcher, 1),
	}

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request to fetch an existing product").
		WithRequest("GET", fmt.Sprintf("/products/%d", pacttest.ExistingProductID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(productMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateProductMissing).
		UponReceiving("a request for a missing product").
		WithRequest("GET", fmt.Sprintf("/products/%d", pacttest.MissingProductID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"error": matchers.Like("product not found"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request to place an order").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"customerName":  matchers.S("Alex"),
				"customerPhone": matchers.Like("555-0100"),
				"items": matchers.EachLike(matchers.Map{
					"variantId": matchers.Like(pacttest.ExistingVariantID),
					"quantity":  matchers.Like(2),
				}, 1),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"success":     matchers.Like(true),
				"orderId":     matchers.Like(1),
				"orderNumber": matchers.Regex("ORD-20260828-ABCDEF", `ORD-\d{8}-[A-HJKMNP-Z2-9]{6}`),
				"total":       matchers.Like(24.0),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request to track an existing order").
		WithRequest("GET", fmt.Sprintf("/orders/%s/status", pacttest.ExistingOrderNumber)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"orderNumber": matchers.S(pacttest.ExistingOrderNumber),
				"status":      matchers.Term("PENDING", "PENDING|PROCESSING|COMPLETED|CANCELLED"),
				"total":       matchers.Like(24.0),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateVariantDrained).
		UponReceiving("a request to order more than is on hand").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"customerName":  matchers.S("Blake"),
				"customerPhone": matchers.Like("555-0100"),
				"items": matchers.EachLike(matchers.Map{
					"variantId": matchers.Like(pacttest.ExistingVariantID),
					"quantity":  matchers.Like(2),
				}, 1),
			})
		}).
		WillRespondWith(http.StatusConflict, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"error": matchers.Like("insufficient stock: variant 201 has 0 on hand, requested 2"),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		host := config.Host
		if host == "" {
			host = "localhost"
		}
		api, err := client.New(fmt.Sprintf("http://%s:%d", host, config.Port))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		product, err := api.GetProduct(ctx, pacttest.ExistingProductID)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		if product.ID == 0 || len(product.Variants) == 0 {
			return fmt.Errorf("expected product with variants, got %+v", product)
		}

		if _, err := api.GetProduct(ctx, pacttest.MissingProductID); err == nil {
			return fmt.Errorf("expected 404 for product %d", pacttest.MissingProductID)
		} else {
			var apiErr *client.APIError
			if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
				return fmt.Errorf("expected APIError 404, got %v", err)
			}
		}

		order := client.PlaceOrderRequest{
			CustomerName:  "Alex",
			CustomerPhone: "555-0100",
			Items:         []client.OrderItem{{VariantID: pacttest.ExistingVariantID, Quantity: 2}},
		}
		confirmation, err := api.PlaceOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("place order: %w", err)
		}
		if confirmation.OrderNumber == "" {
			return fmt.Errorf("expected order number to be set")
		}

		status, err := api.OrderStatus(ctx, pacttest.ExistingOrderNumber)
		if err != nil {
			return fmt.Errorf("order status: %w", err)
		}
		if status.Status == "" {
			return fmt.Errorf("expected order status to be set")
		}

		drained := order
		drained.CustomerName = "Blake"
		if _, err := api.PlaceOrder(ctx, drained); err == nil {
			return fmt.Errorf("expected 409 for drained variant")
		} else {
			var apiErr *client.APIError
			if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
				return fmt.Errorf("expected APIError 409, got %v", err)
			}
		}

		return nil
	})
	require.NoError(t, err)
}
