package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	"github.com/retaildesk/storefront-api/internal/shared/apierrors"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

// CatalogAPI serves the public product browsing endpoints.
type CatalogAPI struct {
	catalog catalogapp.Port
}

func NewCatalogAPI(catalog catalogapp.Port) CatalogAPI {
	return CatalogAPI{catalog: catalog}
}

// ListProducts handles GET /products?categoryId=&page=&limit=.
func (api CatalogAPI) ListProducts(c *gin.Context) {
	input := catalogapp.ListProductsInput{Page: parsePage(c)}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apierrors.Respond(c, http.StatusBadRequest, "categoryId must be an integer")
			return
		}
		input.CategoryID = &id
	}

	listing, err := api.catalog.ListProducts(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := productListPayload{
		Products:   make([]productPayload, 0, len(listing.Products)),
		Pagination: listing.Pagination,
	}
	for _, product := range listing.Products {
		payload.Products = append(payload.Products, toProductPayload(product))
	}
	c.JSON(http.StatusOK, payload)
}

// GetProduct handles GET /products/:id.
func (api CatalogAPI) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.Respond(c, http.StatusBadRequest, "product id must be an integer")
		return
	}

	product, err := api.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductPayload(*product))
}

// ListCategories handles GET /products/categories/list.
func (api CatalogAPI) ListCategories(c *gin.Context) {
	categories, err := api.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payloads := make([]categoryPayload, 0, len(categories))
	for _, category := range categories {
		payloads = append(payloads, toCategoryPayload(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": payloads})
}

// parsePage reads page/limit query parameters. Unparseable values fall back
// to the defaults rather than failing the request.
func parsePage(c *gin.Context) pagination.Page {
	page := pagination.Page{}
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page.Limit = v
		}
	}
	return page.Clamp()
}
