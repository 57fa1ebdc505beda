package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
)

// ReportsAPI serves the back-office reporting endpoints.
type ReportsAPI struct {
	catalog   catalogapp.Port
	employees employeesapp.Port
}

func NewReportsAPI(catalog catalogapp.Port, employees employeesapp.Port) ReportsAPI {
	return ReportsAPI{catalog: catalog, employees: employees}
}

// LowStock handles GET /reports/low-stock.
func (api ReportsAPI) LowStock(c *gin.Context) {
	report, err := api.catalog.LowStockReport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lowStockPayload{
		Threshold: report.Threshold,
		Variants:  toVariantPayloads(report.Variants),
	})
}
