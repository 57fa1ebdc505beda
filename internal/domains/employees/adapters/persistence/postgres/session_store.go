package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore persists bearer sessions in PostgreSQL.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	EmployeeCode string    `gorm:"column:employee_code;index"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (sessionRecord) TableName() string { return "employee_sessions" }

func (s *SessionStore) Save(ctx context.Context, token, employeeCode string, expiresAt time.Time) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.TrimSpace(employeeCode) == "" {
		return errors.New("token and employee code are required")
	}
	record := sessionRecord{Token: token, EmployeeCode: employeeCode, ExpiresAt: expiresAt}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"employee_code", "expires_at"}),
		}).Create(&record).Error
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (string, error) {
	if err := s.ensureDB(); err != nil {
		return "", err
	}
	var record sessionRecord
	err := s.db.WithContext(ctx).
		First(&record, "token = ? AND expires_at > ?", token, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrSessionNotFound
		}
		return "", err
	}
	return record.EmployeeCode, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes dead sessions. Run from the session-purger CLI.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).Delete(&sessionRecord{}, "expires_at <= ?", time.Now())
	return result.RowsAffected, result.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}
