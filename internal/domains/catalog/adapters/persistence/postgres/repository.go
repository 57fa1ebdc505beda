package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the catalog from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle
// and schema (see platform/migrations).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
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

func (r *Repository) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(&productRecord{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []productRecord
	if err := query.Order("id").Offset(filter.Offset).Limit(filter.Limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, total, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrProductNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(records))
	for i := range records {
		rec := records[i]
		categories = append(categories, &domain.Category{ID: rec.ID, Name: rec.Name, Description: rec.Description})
	}
	return categories, nil
}

func (r *Repository) VariantsByProduct(ctx context.Context, productIDs []int64) ([]*domain.Variant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, nil
	}
	var records []variantRecord
	if err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toVariants(records), nil
}

func (r *Repository) GetVariant(ctx context.Context, id int64) (*domain.Variant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record variantRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrVariantNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListVariants(ctx context.Context) ([]*domain.Variant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []variantRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toVariants(records), nil
}

func (r *Repository) QuantityOnHand(ctx context.Context, variantIDs []int64) (map[int64]int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	quantities := make(map[int64]int64, len(variantIDs))
	if len(variantIDs) == 0 {
		return quantities, nil
	}
	var records []inventoryRecord
	if err := r.db.WithContext(ctx).Where("variant_id IN ?", variantIDs).Find(&records).Error; err != nil {
		return nil, err
	}
	for _, rec := range records {
		quantities[rec.VariantID] = rec.Quantity
	}
	return quantities, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toVariants(records []variantRecord) []*domain.Variant {
	variants := make([]*domain.Variant, 0, len(records))
	for i := range records {
		variants = append(variants, records[i].toDomain())
	}
	return variants
}

func (rec productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		BasePrice:   rec.BasePrice,
		ImageURLs:   rec.ImageURLs,
		CategoryID:  rec.CategoryID,
	}
}

func (rec variantRecord) toDomain() *domain.Variant {
	return &domain.Variant{
		ID:         rec.ID,
		ProductID:  rec.ProductID,
		SKU:        rec.SKU,
		Name:       rec.Name,
		Attributes: rec.Attributes,
		Price:      rec.Price,
	}
}
