package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Session is an issued bearer credential.
type Session struct {
	Token        string
	ExpiresIn    int64
	EmployeeCode string
	EmployeeName string
}

// Port exposes employee auth use cases to adapters.
type Port interface {
	Login(ctx context.Context, employeeCode, password string) (*Session, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Service implements employee authentication over a repository and a
// session store.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewService(repo ports.Repository, sessions ports.SessionStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{repo: repo, sessions: sessions, ttl: ttl, now: time.Now}
}

// Login verifies credentials and issues a bearer token. Lookup failures and
// bad passwords collapse into one error so callers cannot probe for codes.
func (s *Service) Login(ctx context.Context, employeeCode, password string) (*Session, error) {
	employeeCode = strings.TrimSpace(employeeCode)
	if employeeCode == "" || password == "" {
		return nil, ports.ErrInvalidCredentials
	}
	employee, err := s.repo.GetByCode(ctx, employeeCode)
	if err != nil {
		return nil, ports.ErrInvalidCredentials
	}
	if !employee.Active || !employee.CheckPassword(password) {
		return nil, ports.ErrInvalidCredentials
	}
	token := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)
	if err := s.sessions.Save(ctx, token, employee.Code, expiresAt); err != nil {
		return nil, err
	}
	return &Session{
		Token:        token,
		ExpiresIn:    int64(s.ttl.Seconds()),
		EmployeeCode: employee.Code,
		EmployeeName: employee.Name,
	}, nil
}

// Authenticate resolves a bearer token to an employee code.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ports.ErrInvalidCredentials
	}
	code, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return "", ports.ErrInvalidCredentials
	}
	return code, nil
}

// Logout invalidates a bearer token. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

var _ Port = (*Service)(nil)
