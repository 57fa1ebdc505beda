package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression. Orders start PENDING; fulfillment
// tooling moves them forward or cancels them.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

var (
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingCustomerPhone = errors.New("customer phone is required")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrInvalidStatus        = errors.New("order status is invalid")
)

// Line is one ordered variant with the unit price captured at order time.
// The price is copied, never recomputed, so historical orders are immune to
// later catalog price changes.
type Line struct {
	VariantID int64
	SKU       string
	Name      string
	Quantity  int64
	UnitPrice float64
}

// Subtotal is unit price times quantity.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Order is the purchase aggregate: customer contact, line items, captured
// total, and progression status. Number is the human-facing identifier,
// distinct from the numeric id.
type Order struct {
	ID              int64
	Number          string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	Notes           string
	Lines           []Line
	Total           float64
	Status          Status
	CreatedAt       time.Time
}

// Validate enforces aggregate invariants.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return ErrMissingCustomerName
	}
	if strings.TrimSpace(o.CustomerPhone) == "" {
		return ErrMissingCustomerPhone
	}
	if len(o.Lines) == 0 {
		return ErrNoItems
	}
	for _, line := range o.Lines {
		if line.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// ComputeTotal recalculates and stores the order total from its lines.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Subtotal()
	}
	o.Total = total
	return total
}

// UpdateStatus accepts only known states and defaults empty to PENDING.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPending
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
