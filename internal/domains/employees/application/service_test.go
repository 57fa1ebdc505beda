package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retaildesk/storefront-api/internal/domains/employees/adapters/memory"
	"github.com/retaildesk/storefront-api/internal/domains/employees/domain"
	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

func newAuthFixture(t *testing.T) (*Service, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	employee, err := domain.NewEmployee("EMP001", "Linh Vo", "correct-horse")
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), employee)
	require.NoError(t, err)
	return NewService(repo, memory.NewSessionStore(), time.Hour), repo
}

func TestLogin_IssuesBearerToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	session, err := svc.Login(context.Background(), "EMP001", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, int64(3600), session.ExpiresIn)
	require.Equal(t, "EMP001", session.EmployeeCode)
	require.Equal(t, "Linh Vo", session.EmployeeName)

	code, err := svc.Authenticate(context.Background(), session.Token)
	require.NoError(t, err)
	require.Equal(t, "EMP001", code)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "EMP001", "wrong-password")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "GHOST", "correct-horse")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_RejectsInactiveEmployee(t *testing.T) {
	svc, repo := newAuthFixture(t)

	employee, err := repo.GetByCode(context.Background(), "EMP001")
	require.NoError(t, err)
	employee.Active = false
	_, err = repo.Save(context.Background(), employee)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "EMP001", "correct-horse")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestAuthenticate_RejectsGarbageAndLoggedOutTokens(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
	_, err = svc.Authenticate(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	session, err := svc.Login(context.Background(), "EMP001", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), session.Token))
	_, err = svc.Authenticate(context.Background(), session.Token)
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestPasswordHashing(t *testing.T) {
	_, err := domain.NewEmployee("EMP002", "Short", "2short")
	require.ErrorIs(t, err, domain.ErrWeakPassword)

	employee, err := domain.NewEmployee("EMP002", "Ok", "long-enough")
	require.NoError(t, err)
	require.NotEqual(t, "long-enough", employee.PasswordHash)
	require.True(t, employee.CheckPassword("long-enough"))
	require.False(t, employee.CheckPassword("long-enough!"))
}
