package application

import (
	"errors"
	"fmt"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
)

// ErrNotFound signals the requested product or variant does not exist.
var ErrNotFound = errors.New("not found")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrProductNotFound) || errors.Is(err, ports.ErrVariantNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
