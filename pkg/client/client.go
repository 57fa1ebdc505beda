// Package client is a typed HTTP client for the storefront API. Every call
// makes a single attempt; retry policy belongs to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront API error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the storefront HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New builds a client with sane defaults.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storefront base URL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListProducts fetches one catalog page.
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) (*ProductList, error) {
	query := url.Values{}
	if params.CategoryID != nil {
		query.Set("categoryId", strconv.FormatInt(*params.CategoryID, 10))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	path := "/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var list ProductList
	if err := c.do(ctx, http.MethodGet, path, "", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct fetches a single product with variants.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var payload struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/categories/list", "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

// PlaceOrder submits an order.
func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/orders", "", req, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// OrderStatus tracks an order by its number.
func (c *Client) OrderStatus(ctx context.Context, orderNumber string) (*OrderStatus, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, errors.New("order number is required")
	}
	var status OrderStatus
	path := "/orders/" + url.PathEscape(orderNumber) + "/status"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Login exchanges employee credentials for a bearer session.
func (c *Client) Login(ctx context.Context, employeeCode, password string) (*Session, error) {
	body := map[string]string{"employeeCode": employeeCode, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates a bearer session.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// LowStockReport fetches the back-office low stock report.
func (c *Client) LowStockReport(ctx context.Context, token string) (*LowStockReport, error) {
	var report LowStockReport
	if err := c.do(ctx, http.MethodGet, "/reports/low-stock", token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// do performs one request and decodes either the success payload or the
// error envelope.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call storefront API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage decodes the {"error": ...} envelope, falling back to the
// HTTP status text when the body is not parsable.
func errorMessage(resp *http.Response) string {
	var envelope struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &envelope) == nil && strings.TrimSpace(envelope.Error) != "" {
		return envelope.Error
	}
	return resp.Status
}
