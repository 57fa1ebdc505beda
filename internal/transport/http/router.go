// Package httpapi is the gin transport for the storefront: public catalog
// and order endpoints, plus bearer-protected back-office reporting.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
)

// Handlers groups the per-context APIs the router mounts.
type Handlers struct {
	Catalog CatalogAPI
	Orders  OrdersAPI
	Auth    AuthAPI
	Reports ReportsAPI
}

// NewHandlers wires the APIs from the application services.
func NewHandlers(catalog catalogapp.Port, orders ordersapp.Port, employees employeesapp.Port) Handlers {
	return Handlers{
		Catalog: NewCatalogAPI(catalog),
		Orders:  NewOrdersAPI(orders),
		Auth:    NewAuthAPI(employees),
		Reports: NewReportsAPI(catalog, employees),
	}
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/products", handlers.Catalog.ListProducts)
	router.GET("/products/categories/list", handlers.Catalog.ListCategories)
	router.GET("/products/:id", handlers.Catalog.GetProduct)

	router.POST("/orders", handlers.Orders.PlaceOrder)
	router.GET("/orders/:orderNumber/status", handlers.Orders.GetOrderStatus)

	router.POST("/auth/login", handlers.Auth.Login)

	authed := router.Group("", RequireAuth(handlers.Reports.employees))
	authed.POST("/auth/logout", handlers.Auth.Logout)
	authed.GET("/reports/low-stock", handlers.Reports.LowStock)

	return router
}
