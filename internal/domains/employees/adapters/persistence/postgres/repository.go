package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retaildesk/storefront-api/internal/domains/employees/domain"
	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists employees in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type employeeRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Code         string    `gorm:"column:code;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password_hash"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (employeeRecord) TableName() string { return "employees" }

// Save upserts an employee keyed by code.
func (r *Repository) Save(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := employeeRecord{
		ID:           employee.ID,
		Code:         strings.ToUpper(strings.TrimSpace(employee.Code)),
		Name:         employee.Name,
		PasswordHash: employee.PasswordHash,
		Active:       employee.Active,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "password_hash", "active", "updated_at"}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByCode(ctx, record.Code)
}

// GetByCode fetches an employee by its code, case-insensitively.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record employeeRecord
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := r.db.WithContext(ctx).First(&record, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &domain.Employee{
		ID:           record.ID,
		Code:         record.Code,
		Name:         record.Name,
		PasswordHash: record.PasswordHash,
		Active:       record.Active,
	}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres employee repository not configured")
	}
	return nil
}
