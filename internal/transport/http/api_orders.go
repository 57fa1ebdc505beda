package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
	"github.com/retaildesk/storefront-api/internal/shared/apierrors"
)

// OrdersAPI serves order placement and tracking.
type OrdersAPI struct {
	orders ordersapp.Port
}

func NewOrdersAPI(orders ordersapp.Port) OrdersAPI {
	return OrdersAPI{orders: orders}
}

type orderItemRequest struct {
	VariantID int64 `json:"variantId"`
	Quantity  int64 `json:"quantity"`
}

type placeOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerAddress string             `json:"customerAddress"`
	CustomerCity    string             `json:"customerCity"`
	Notes           string             `json:"notes"`
	Items           []orderItemRequest `json:"items"`
}

type confirmationPayload struct {
	Success     bool    `json:"success"`
	OrderID     int64   `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
	Message     string  `json:"message"`
}

type orderStatusPayload struct {
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
}

// PlaceOrder handles POST /orders.
func (api OrdersAPI) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, http.StatusBadRequest, "malformed order payload")
		return
	}

	input := ordersapp.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		Notes:           req.Notes,
		Items:           make([]ordersapp.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, ordersapp.OrderItemInput{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	confirmation, err := api.orders.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmationPayload{
		Success:     true,
		OrderID:     confirmation.OrderID,
		OrderNumber: confirmation.OrderNumber,
		Total:       confirmation.Total,
		Message:     "order placed",
	})
}

// GetOrderStatus handles GET /orders/:orderNumber/status.
func (api OrdersAPI) GetOrderStatus(c *gin.Context) {
	view, err := api.orders.OrderStatus(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderStatusPayload{
		OrderNumber: view.OrderNumber,
		Status:      string(view.Status),
		Total:       view.Total,
	})
}
