package client

// Category is one catalog grouping.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Variant is a sellable unit with live stock information.
type Variant struct {
	ID             int64             `json:"id"`
	ProductID      int64             `json:"productId"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name,omitempty"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Price          float64           `json:"price"`
	QuantityOnHand int64             `json:"quantityOnHand"`
	StockStatus    string            `json:"stockStatus"`
}

// Product is a catalog entry with its variants.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	BasePrice    float64   `json:"basePrice"`
	ImageURLs    []string  `json:"imageUrls,omitempty"`
	CategoryID   *int64    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
	Variants     []Variant `json:"variants"`
}

// Pagination is the metadata block accompanying list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ProductList is one page of the catalog.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ListProductsParams filters and windows ListProducts.
type ListProductsParams struct {
	CategoryID *int64
	Page       int
	Limit      int
}

// OrderItem is one requested variant/quantity pair.
type OrderItem struct {
	VariantID int64 `json:"variantId"`
	Quantity  int64 `json:"quantity"`
}

// PlaceOrderRequest is the storefront order submission.
type PlaceOrderRequest struct {
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	CustomerCity    string      `json:"customerCity,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
}

// OrderConfirmation is returned after a successful placement.
type OrderConfirmation struct {
	Success     bool    `json:"success"`
	OrderID     int64   `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
	Message     string  `json:"message"`
}

// OrderStatus is the order-tracking projection.
type OrderStatus struct {
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
}

// Employee identifies the authenticated back-office operator.
type Employee struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Session is an issued bearer credential.
type Session struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"`
	Employee    Employee `json:"employee"`
}

// LowStockReport lists every variant at or below the configured threshold.
type LowStockReport struct {
	Threshold int       `json:"threshold"`
	Variants  []Variant `json:"variants"`
}
