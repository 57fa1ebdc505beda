package application

import (
	"errors"
	"fmt"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	"github.com/retaildesk/storefront-api/internal/domains/orders/ports"
)

var (
	// ErrValidation signals a malformed or incomplete order request, rejected
	// before any store or inventory access.
	ErrValidation = errors.New("invalid order request")
	// ErrUnknownVariant signals an item referenced a variant the catalog does
	// not know.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInsufficientStock signals a requested quantity exceeds what is on
	// hand for a variant.
	ErrInsufficientStock = errors.New("insufficient stock")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNoItems),
		errors.Is(err, domain.ErrMissingCustomerName),
		errors.Is(err, domain.ErrMissingCustomerPhone),
		errors.Is(err, domain.ErrInvalidQuantity):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, ports.ErrUnknownVariant):
		return fmt.Errorf("%w: %w", ErrUnknownVariant, err)
	case errors.Is(err, ports.ErrInsufficientStock):
		return fmt.Errorf("%w: %w", ErrInsufficientStock, err)
	}
	return err
}
