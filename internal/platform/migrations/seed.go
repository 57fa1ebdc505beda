package migrations

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	employeesdomain "github.com/retaildesk/storefront-api/internal/domains/employees/domain"
)

// Seed data is declared as records and applied with upserts, so re-running
// the process against an existing database never duplicates rows or clobbers
// operator-edited values.

var defaultSettings = []settingRecord{
	{Key: "low_stock_threshold", Value: "10"},
}

var demoCategories = []categoryRecord{
	{ID: 1, Name: "Coffee", Description: "Whole bean and ground coffee"},
	{ID: 2, Name: "Tea", Description: "Loose leaf and bagged tea"},
}

var demoProducts = []productRecord{
	{ID: 1, Name: "House Blend", Description: "Medium roast, chocolate and citrus notes", BasePrice: 12, CategoryID: int64Ptr(1)},
	{ID: 2, Name: "Single Origin Dak Lak", Description: "Robusta, honey processed", BasePrice: 15, CategoryID: int64Ptr(1)},
	{ID: 3, Name: "Jasmine Green", Description: "Scented green tea", BasePrice: 9, CategoryID: int64Ptr(2)},
}

var demoVariants = []variantRecord{
	{ID: 1, ProductID: 1, SKU: "HB-250", Name: "250g", Attributes: map[string]string{"weight": "250g"}, Price: 12},
	{ID: 2, ProductID: 1, SKU: "HB-1000", Name: "1kg", Attributes: map[string]string{"weight": "1kg"}, Price: 40},
	{ID: 3, ProductID: 2, SKU: "DL-250", Name: "250g", Attributes: map[string]string{"weight": "250g"}, Price: 15},
	{ID: 4, ProductID: 3, SKU: "JG-100", Name: "100g", Attributes: map[string]string{"weight": "100g"}, Price: 9},
}

var demoInventory = []inventoryRecord{
	{VariantID: 1, Quantity: 120},
	{VariantID: 2, Quantity: 8},
	{VariantID: 3, Quantity: 40},
	{VariantID: 4, Quantity: 0},
}

// Seed applies the default settings and, when includeDemo is set, a small
// demo catalog. All writes are insert-if-absent.
func Seed(db *gorm.DB, includeDemo bool) error {
	if db == nil {
		return nil
	}
	if err := upsert(db, defaultSettings); err != nil {
		return err
	}
	if !includeDemo {
		return nil
	}
	if err := upsert(db, demoCategories); err != nil {
		return err
	}
	if err := upsert(db, demoProducts); err != nil {
		return err
	}
	if err := upsert(db, demoVariants); err != nil {
		return err
	}
	if err := upsert(db, demoInventory); err != nil {
		return err
	}
	return seedDemoEmployee(db)
}

// seedDemoEmployee inserts EMP001 with a hash computed at seed time, so no
// password hash lives in source. Insert-if-absent like the rest of the seed.
func seedDemoEmployee(db *gorm.DB) error {
	hash, err := employeesdomain.HashPassword("changeme-demo")
	if err != nil {
		return err
	}
	employee := employeeRecord{ID: 1, Code: "EMP001", Name: "Demo Operator", PasswordHash: hash, Active: true}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&employee).Error
}

func upsert[T any](db *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&records).Error
}

func int64Ptr(v int64) *int64 { return &v }
