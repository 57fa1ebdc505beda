// Package migrations owns the relational schema for every bounded context.
// Record structs here mirror the adapter-level records; keeping them in one
// place makes the full schema reviewable at a glance.
package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for all bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&categoryRecord{},
		&productRecord{},
		&variantRecord{},
		&inventoryRecord{},
		&settingRecord{},
		&orderRecord{},
		&orderLineRecord{},
		&employeeRecord{},
		&sessionRecord{},
	)
}

type categoryRecord struct {
	ID          int64  `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
}

func (categoryRecord) TableName() string { return "categories" }

type productRecord struct {
	ID          int64          `gorm:"primaryKey;column:id"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	BasePrice   float64        `gorm:"column:base_price"`
	ImageURLs   pq.StringArray `gorm:"column:image_urls;type:text[]"`
	CategoryID  *int64         `gorm:"column:category_id;index"`
}

func (productRecord) TableName() string { return "products" }

type variantRecord struct {
	ID         int64             `gorm:"primaryKey;column:id"`
	ProductID  int64             `gorm:"column:product_id;index"`
	SKU        string            `gorm:"column:sku;uniqueIndex"`
	Name       string            `gorm:"column:name"`
	Attributes map[string]string `gorm:"column:attributes;serializer:json"`
	Price      float64           `gorm:"column:price"`
}

func (variantRecord) TableName() string { return "variants" }

type inventoryRecord struct {
	VariantID int64 `gorm:"primaryKey;column:variant_id"`
	Quantity  int64 `gorm:"column:quantity"`
}

func (inventoryRecord) TableName() string { return "inventory_levels" }

type settingRecord struct {
	Key   string `gorm:"primaryKey;column:key;size:128"`
	Value string `gorm:"column:value"`
}

func (settingRecord) TableName() string { return "settings" }

type orderRecord struct {
	ID              int64     `gorm:"primaryKey;column:id"`
	Number          string    `gorm:"column:number;uniqueIndex"`
	CustomerName    string    `gorm:"column:customer_name"`
	CustomerPhone   string    `gorm:"column:customer_phone"`
	CustomerEmail   string    `gorm:"column:customer_email"`
	CustomerAddress string    `gorm:"column:customer_address"`
	CustomerCity    string    `gorm:"column:customer_city"`
	Notes           string    `gorm:"column:notes"`
	Total           float64   `gorm:"column:total"`
	Status          string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt       time.Time `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type orderLineRecord struct {
	ID        int64   `gorm:"primaryKey;column:id"`
	OrderID   int64   `gorm:"column:order_id;index"`
	VariantID int64   `gorm:"column:variant_id;index"`
	SKU       string  `gorm:"column:sku"`
	Name      string  `gorm:"column:name"`
	Quantity  int64   `gorm:"column:quantity"`
	UnitPrice float64 `gorm:"column:unit_price"`
}

func (orderLineRecord) TableName() string { return "order_lines" }

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

type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	EmployeeCode string    `gorm:"column:employee_code;index"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (sessionRecord) TableName() string { return "employee_sessions" }
