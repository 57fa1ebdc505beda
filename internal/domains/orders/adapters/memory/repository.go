package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	catalogports "github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	"github.com/retaildesk/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Inventory is the stock mutation hook the memory repository needs; the
// catalog memory repository satisfies it. DecrementStock must be
// all-or-nothing under the implementation's own lock.
type Inventory interface {
	DecrementStock(ctx context.Context, decrements map[int64]int64) error
}

// Repository is an in-memory order store for no-DSN mode and unit tests.
type Repository struct {
	mu        sync.RWMutex
	inventory Inventory
	byNumber  map[string]*domain.Order
	nextID    int64
}

func NewRepository(inventory Inventory) *Repository {
	return &Repository{inventory: inventory, byNumber: map[string]*domain.Order{}}
}

// Place stores the order and applies its inventory decrements, or neither.
func (r *Repository) Place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	clone.Lines = append([]domain.Line(nil), order.Lines...)
	if err := clone.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNumber[clone.Number]; exists {
		return nil, fmt.Errorf("%w: %s", ports.ErrDuplicateNumber, clone.Number)
	}
	decrements := make(map[int64]int64, len(clone.Lines))
	for _, line := range clone.Lines {
		decrements[line.VariantID] += line.Quantity
	}
	if err := r.inventory.DecrementStock(ctx, decrements); err != nil {
		if errors.Is(err, catalogports.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %s", ports.ErrInsufficientStock, trimSentinel(err))
		}
		return nil, err
	}
	r.nextID++
	clone.ID = r.nextID
	r.byNumber[clone.Number] = &clone
	stored := clone
	stored.Lines = append([]domain.Line(nil), clone.Lines...)
	return &stored, nil
}

// GetByNumber fetches an order by its human-facing number.
func (r *Repository) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.byNumber[number]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	clone.Lines = append([]domain.Line(nil), order.Lines...)
	return &clone, nil
}

// trimSentinel strips the catalog sentinel prefix so the orders sentinel is
// not doubled up in the message.
func trimSentinel(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
