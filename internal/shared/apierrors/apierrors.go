// Package apierrors defines the HTTP error contract for the storefront API.
// Every non-2xx response carries a single-field JSON envelope: {"error": "..."}.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the failure class independently of transport status.
type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeUnknownVariant    Code = "UNKNOWN_VARIANT"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeNotFound          Code = "NOT_FOUND"
	CodePersistence       Code = "PERSISTENCE_ERROR"
	CodeUnauthorized      Code = "UNAUTHORIZED"
)

// APIError pairs a failure class with an HTTP status and a user-facing message.
type APIError struct {
	Code    Code
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithMessage returns a copy carrying the given message.
func (e APIError) WithMessage(message string) APIError {
	e.Message = message
	return e
}

// WithMessagef returns a copy carrying a formatted message.
func (e APIError) WithMessagef(format string, args ...any) APIError {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// Templates for the error taxonomy. Handlers specialize them via WithMessage.
var (
	Validation = APIError{Code: CodeValidation, Status: http.StatusBadRequest, Message: "invalid request"}

	UnknownVariant = APIError{Code: CodeUnknownVariant, Status: http.StatusNotFound, Message: "unknown variant"}

	InsufficientStock = APIError{Code: CodeInsufficientStock, Status: http.StatusConflict, Message: "insufficient stock"}

	NotFound = APIError{Code: CodeNotFound, Status: http.StatusNotFound, Message: "resource not found"}

	Persistence = APIError{Code: CodePersistence, Status: http.StatusInternalServerError, Message: "storage failure"}

	Unauthorized = APIError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: "missing or invalid credentials"}
)

// StatusOf extracts the HTTP status from an error chain, defaulting to 500.
func StatusOf(err error) int {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
