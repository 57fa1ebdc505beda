package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
)

var _ ports.SettingsStore = (*SettingsStore)(nil)

// SettingsStore reads key-value configuration from PostgreSQL.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

type settingRecord struct {
	Key   string `gorm:"primaryKey;column:key;size:128"`
	Value string `gorm:"column:value"`
}

func (settingRecord) TableName() string { return "settings" }

func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	if s == nil || s.db == nil {
		return "", errors.New("postgres settings store not configured")
	}
	var record settingRecord
	if err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrSettingNotFound
		}
		return "", err
	}
	return record.Value, nil
}
