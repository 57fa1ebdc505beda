package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/retaildesk/storefront-api/internal/domains/employees/domain"
	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory employee store.
type Repository struct {
	mu        sync.RWMutex
	employees map[string]*domain.Employee
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{employees: map[string]*domain.Employee{}}
}

func (r *Repository) Save(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *employee
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.employees[strings.ToUpper(clone.Code)] = &clone
	return &clone, nil
}

func (r *Repository) GetByCode(_ context.Context, code string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employee, ok := r.employees[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *employee
	return &clone, nil
}
