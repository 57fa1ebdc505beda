package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	"github.com/retaildesk/storefront-api/internal/domains/orders/ports"
)

// Service orchestrates order placement and tracking.
type Service struct {
	repo    ports.Repository
	catalog ports.CatalogGateway
	now     func() time.Time
}

func NewService(repo ports.Repository, catalog ports.CatalogGateway) *Service {
	return &Service{repo: repo, catalog: catalog, now: time.Now}
}

// PlaceOrder validates the request, prices it against the current catalog,
// and persists the order together with its inventory decrements atomically.
// Validation fails fast: request shape first, then variant existence, then
// stock. A rejected order leaves inventory untouched for every variant.
func (s *Service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Confirmation, error) {
	order := &domain.Order{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		CustomerCity:    input.CustomerCity,
		Notes:           input.Notes,
		Status:          domain.StatusPending,
		CreatedAt:       s.now(),
	}
	for _, item := range input.Items {
		order.Lines = append(order.Lines, domain.Line{VariantID: item.VariantID, Quantity: item.Quantity})
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}

	// Resolve every variant before touching stock so UNKNOWN_VARIANT wins
	// over INSUFFICIENT_STOCK when both apply.
	snapshots := make([]*ports.VariantSnapshot, len(order.Lines))
	for i, line := range order.Lines {
		snapshot, err := s.catalog.VariantByID(ctx, line.VariantID)
		if err != nil {
			return nil, mapError(err)
		}
		snapshots[i] = snapshot
	}
	for i, line := range order.Lines {
		if snapshots[i].QuantityOnHand < line.Quantity {
			return nil, mapError(fmt.Errorf("%w: variant %d has %d on hand, requested %d",
				ports.ErrInsufficientStock, line.VariantID, snapshots[i].QuantityOnHand, line.Quantity))
		}
	}
	for i := range order.Lines {
		order.Lines[i].SKU = snapshots[i].SKU
		order.Lines[i].Name = snapshots[i].Name
		order.Lines[i].UnitPrice = snapshots[i].Price
	}
	order.ComputeTotal()

	placed, err := s.placeWithFreshNumber(ctx, order)
	if err != nil {
		return nil, mapError(err)
	}
	return &Confirmation{OrderID: placed.ID, OrderNumber: placed.Number, Total: placed.Total}, nil
}

// placeWithFreshNumber retries number generation on duplicate collisions;
// any other repository error propagates unchanged.
func (s *Service) placeWithFreshNumber(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := newOrderNumber(s.now())
		if err != nil {
			return nil, err
		}
		order.Number = number
		placed, err := s.repo.Place(ctx, order)
		if err == nil {
			return placed, nil
		}
		if !errors.Is(err, ports.ErrDuplicateNumber) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("exhausted %d order number attempts: %w", maxNumberAttempts, ports.ErrDuplicateNumber)
}

// OrderStatus resolves an order by its human-facing number.
func (s *Service) OrderStatus(ctx context.Context, orderNumber string) (*StatusView, error) {
	order, err := s.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return &StatusView{OrderNumber: order.Number, Status: order.Status, Total: order.Total}, nil
}

var _ Port = (*Service)(nil)
