package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	"github.com/retaildesk/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed order store. Caller manages DB
// lifecycle and schema (see platform/migrations).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

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

// inventoryRecord mirrors the catalog adapter's schema; order placement is
// the only writer of this table besides restocking tooling.
type inventoryRecord struct {
	VariantID int64 `gorm:"primaryKey;column:variant_id"`
	Quantity  int64 `gorm:"column:quantity"`
}

func (inventoryRecord) TableName() string { return "inventory_levels" }

// Place runs the order insert and its inventory decrements in one
// transaction. Inventory rows are locked FOR UPDATE in ascending variant
// order, so concurrent placements serialize per variant and deadlocks are
// impossible; the quantity re-check under the lock is authoritative.
func (r *Repository) Place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		decrements := make(map[int64]int64, len(order.Lines))
		for _, line := range order.Lines {
			decrements[line.VariantID] += line.Quantity
		}
		variantIDs := make([]int64, 0, len(decrements))
		for id := range decrements {
			variantIDs = append(variantIDs, id)
		}
		sort.Slice(variantIDs, func(i, j int) bool { return variantIDs[i] < variantIDs[j] })

		for _, variantID := range variantIDs {
			needed := decrements[variantID]
			var level inventoryRecord
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&level, "variant_id = ?", variantID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: variant %d has 0 on hand, requested %d",
					ports.ErrInsufficientStock, variantID, needed)
			}
			if err != nil {
				return err
			}
			if level.Quantity < needed {
				return fmt.Errorf("%w: variant %d has %d on hand, requested %d",
					ports.ErrInsufficientStock, variantID, level.Quantity, needed)
			}
			if err := tx.Model(&inventoryRecord{}).
				Where("variant_id = ?", variantID).
				Update("quantity", gorm.Expr("quantity - ?", needed)).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ports.ErrDuplicateNumber, record.Number)
			}
			return err
		}
		lines := make([]orderLineRecord, 0, len(order.Lines))
		for _, line := range order.Lines {
			lines = append(lines, orderLineRecord{
				OrderID:   record.ID,
				VariantID: line.VariantID,
				SKU:       line.SKU,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByNumber(ctx, record.Number)
}

// GetByNumber fetches an order with its lines by the human-facing number.
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var lineRecords []orderLineRecord
	if err := r.db.WithContext(ctx).Where("order_id = ?", record.ID).Order("id").Find(&lineRecords).Error; err != nil {
		return nil, err
	}
	return record.toDomain(lineRecords), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:              order.ID,
		Number:          order.Number,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		CustomerAddress: order.CustomerAddress,
		CustomerCity:    order.CustomerCity,
		Notes:           order.Notes,
		Total:           order.Total,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

func (rec orderRecord) toDomain(lineRecords []orderLineRecord) *domain.Order {
	order := &domain.Order{
		ID:              rec.ID,
		Number:          rec.Number,
		CustomerName:    rec.CustomerName,
		CustomerPhone:   rec.CustomerPhone,
		CustomerEmail:   rec.CustomerEmail,
		CustomerAddress: rec.CustomerAddress,
		CustomerCity:    rec.CustomerCity,
		Notes:           rec.Notes,
		Total:           rec.Total,
		Status:          domain.Status(rec.Status),
		CreatedAt:       rec.CreatedAt,
	}
	for _, line := range lineRecords {
		order.Lines = append(order.Lines, domain.Line{
			VariantID: line.VariantID,
			SKU:       line.SKU,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return order
}
