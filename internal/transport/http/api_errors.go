package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
	employeesports "github.com/retaildesk/storefront-api/internal/domains/employees/ports"
	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
	ordersports "github.com/retaildesk/storefront-api/internal/domains/orders/ports"
	"github.com/retaildesk/storefront-api/internal/shared/apierrors"
)

// respondServiceError maps application and ports errors onto the
// {"error": ...} envelope. Unmapped errors stay opaque 500s.
func respondServiceError(c *gin.Context, err error) {
	apierrors.RespondMapped(c, err, mapServiceError)
}

func mapServiceError(err error) (apierrors.APIError, bool) {
	switch {
	case errors.Is(err, ordersapp.ErrValidation):
		return apierrors.Validation.WithMessage(err.Error()), true
	case errors.Is(err, ordersapp.ErrUnknownVariant):
		return apierrors.UnknownVariant.WithMessage(err.Error()), true
	case errors.Is(err, ordersapp.ErrInsufficientStock):
		return apierrors.InsufficientStock.WithMessage(err.Error()), true
	case errors.Is(err, ordersports.ErrNotFound):
		return apierrors.NotFound.WithMessage("order not found"), true
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, catalogports.ErrProductNotFound),
		errors.Is(err, catalogports.ErrVariantNotFound):
		return apierrors.NotFound.WithMessage("product not found"), true
	case errors.Is(err, employeesports.ErrInvalidCredentials):
		return apierrors.Unauthorized, true
	}
	return apierrors.APIError{}, false
}
