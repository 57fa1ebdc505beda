package ports

import (
	"context"
	"errors"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateNumber signals the generated order number collided with an
	// existing one; the caller retries with a fresh number.
	ErrDuplicateNumber = errors.New("order number already exists")
	// ErrInsufficientStock signals the authoritative stock check inside the
	// placement transaction failed. The order and all decrements are rolled
	// back; no partial state is observable.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repository persists orders. Place is the single write path: it stores the
// order with its lines and applies the matching inventory decrements as one
// atomic unit, serializing per-variant so concurrent placements cannot
// oversell.
type Repository interface {
	Place(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
}
