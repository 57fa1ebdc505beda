package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory catalog used when no DSN is configured and as
// the unit-test substrate. It also owns the in-memory inventory, so order
// placement decrements go through its lock.
type Repository struct {
	mu         sync.RWMutex
	categories map[int64]*domain.Category
	products   map[int64]*domain.Product
	variants   map[int64]*domain.Variant
	inventory  map[int64]int64
	nextID     int64
}

func NewRepository() *Repository {
	return &Repository{
		categories: map[int64]*domain.Category{},
		products:   map[int64]*domain.Product{},
		variants:   map[int64]*domain.Variant{},
		inventory:  map[int64]int64{},
	}
}

// UpsertCategory stores a category, assigning an id when absent.
func (r *Repository) UpsertCategory(category *domain.Category) *domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *category
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.categories[clone.ID] = &clone
	return &clone
}

// UpsertProduct stores a product, assigning an id when absent.
func (r *Repository) UpsertProduct(product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.products[clone.ID] = &clone
	return &clone, nil
}

// UpsertVariant stores a variant, enforcing SKU uniqueness across the catalog.
func (r *Repository) UpsertVariant(variant *domain.Variant) (*domain.Variant, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.variants {
		if existing.SKU == variant.SKU && existing.ID != variant.ID {
			return nil, fmt.Errorf("sku %q already in use by variant %d", variant.SKU, existing.ID)
		}
	}
	clone := *variant
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.variants[clone.ID] = &clone
	return &clone, nil
}

// SetStock replaces the quantity on hand for a variant.
func (r *Repository) SetStock(variantID, quantity int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory[variantID] = quantity
}

// DecrementStock applies all decrements or none. The check and the write run
// under one lock so concurrent order placements cannot oversell.
func (r *Repository) DecrementStock(_ context.Context, decrements map[int64]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for variantID, qty := range decrements {
		if r.inventory[variantID] < qty {
			return fmt.Errorf("%w: variant %d has %d on hand, requested %d",
				ports.ErrInsufficientStock, variantID, r.inventory[variantID], qty)
		}
	}
	for variantID, qty := range decrements {
		r.inventory[variantID] -= qty
	}
	return nil
}

func (r *Repository) ListProducts(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != nil {
			if p.CategoryID == nil || *p.CategoryID != *filter.CategoryID {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *Repository) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) ListCategories(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) VariantsByProduct(_ context.Context, productIDs []int64) ([]*domain.Variant, error) {
	wanted := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Variant, 0, len(r.variants))
	for _, v := range r.variants {
		if _, ok := wanted[v.ProductID]; !ok {
			continue
		}
		clone := *v
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetVariant(_ context.Context, id int64) (*domain.Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	variant, ok := r.variants[id]
	if !ok {
		return nil, ports.ErrVariantNotFound
	}
	clone := *variant
	return &clone, nil
}

func (r *Repository) ListVariants(_ context.Context) ([]*domain.Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Variant, 0, len(r.variants))
	for _, v := range r.variants {
		clone := *v
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) QuantityOnHand(_ context.Context, variantIDs []int64) (map[int64]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quantities := make(map[int64]int64, len(variantIDs))
	for _, id := range variantIDs {
		if qty, ok := r.inventory[id]; ok {
			quantities[id] = qty
		}
	}
	return quantities, nil
}
