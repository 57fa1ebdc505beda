package ports

import (
	"context"
	"errors"
	"time"

	"github.com/retaildesk/storefront-api/internal/domains/employees/domain"
)

var (
	ErrNotFound           = errors.New("employee not found")
	ErrInvalidCredentials = errors.New("invalid employee code or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// Repository persists employees.
type Repository interface {
	Save(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
}

// SessionStore persists bearer tokens for back-office access.
type SessionStore interface {
	Save(ctx context.Context, token, employeeCode string, expiresAt time.Time) error
	// Lookup returns the employee code for a live token.
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	// PurgeExpired removes dead sessions and reports how many went away.
	PurgeExpired(ctx context.Context) (int64, error)
}
