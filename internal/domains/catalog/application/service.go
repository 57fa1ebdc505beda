package application

import (
	"context"
	"sort"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
	"github.com/retaildesk/storefront-api/internal/shared/pagination"
)

// Service orchestrates catalog read use cases.
type Service struct {
	repo     ports.Repository
	settings ports.SettingsStore
}

func NewService(repo ports.Repository, settings ports.SettingsStore) *Service {
	return &Service{repo: repo, settings: settings}
}

// ListProducts returns one catalog page with variants, category names, and
// stock labels resolved at call time.
func (s *Service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductListing, error) {
	page := input.Page.Clamp()
	filter := ports.ProductFilter{
		CategoryID: input.CategoryID,
		Offset:     page.Offset(),
		Limit:      page.Limit,
	}
	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	categoryNames, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}
	variantViews, err := s.variantViews(ctx, products, productIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p, categoryNames, variantViews[p.ID]))
	}
	return &ProductListing{Products: views, Pagination: pagination.Build(page, total)}, nil
}

// GetProduct returns a single product with variants and stock labels.
func (s *Service) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	categoryNames, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	variantViews, err := s.variantViews(ctx, []*domain.Product{product}, []int64{product.ID})
	if err != nil {
		return nil, err
	}
	view := toProductView(product, categoryNames, variantViews[product.ID])
	return &view, nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// LowStockReport flags every variant whose quantity sits at or below the
// configured threshold, including variants with no inventory record at all.
func (s *Service) LowStockReport(ctx context.Context) (*LowStockReport, error) {
	threshold := s.threshold(ctx)
	variants, err := s.repo.ListVariants(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(variants))
	for _, v := range variants {
		ids = append(ids, v.ID)
	}
	quantities, err := s.repo.QuantityOnHand(ctx, ids)
	if err != nil {
		return nil, err
	}
	report := &LowStockReport{Threshold: threshold}
	for _, v := range variants {
		qty := quantities[v.ID]
		status := domain.StatusFor(qty, threshold)
		if status == domain.StockIn {
			continue
		}
		report.Variants = append(report.Variants, toVariantView(v, qty, status))
	}
	sort.Slice(report.Variants, func(i, j int) bool {
		return report.Variants[i].QuantityOnHand < report.Variants[j].QuantityOnHand
	})
	return report, nil
}

// threshold resolves the low-stock boundary on every call so setting changes
// take effect without a restart.
func (s *Service) threshold(ctx context.Context) int {
	raw, err := s.settings.Get(ctx, domain.SettingLowStockThreshold)
	if err != nil {
		return domain.DefaultLowStockThreshold
	}
	return domain.ResolveThreshold(raw)
}

func (s *Service) categoryNames(ctx context.Context) (map[int64]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *Service) variantViews(ctx context.Context, products []*domain.Product, productIDs []int64) (map[int64][]VariantView, error) {
	variants, err := s.repo.VariantsByProduct(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(variants))
	for _, v := range variants {
		ids = append(ids, v.ID)
	}
	quantities, err := s.repo.QuantityOnHand(ctx, ids)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		byProduct[p.ID] = p
	}
	threshold := s.threshold(ctx)
	views := make(map[int64][]VariantView, len(products))
	for _, v := range variants {
		qty := quantities[v.ID]
		view := toVariantView(v, qty, domain.StatusFor(qty, threshold))
		view.Price = v.EffectivePrice(byProduct[v.ProductID])
		views[v.ProductID] = append(views[v.ProductID], view)
	}
	for id := range views {
		group := views[id]
		sort.Slice(group, func(i, j int) bool { return group[i].SKU < group[j].SKU })
	}
	return views, nil
}

func toVariantView(v *domain.Variant, quantity int64, status domain.StockStatus) VariantView {
	return VariantView{
		ID:             v.ID,
		ProductID:      v.ProductID,
		SKU:            v.SKU,
		Name:           v.Name,
		Attributes:     v.Attributes,
		Price:          v.Price,
		QuantityOnHand: quantity,
		StockStatus:    status,
	}
}

func toProductView(p *domain.Product, categoryNames map[int64]string, variants []VariantView) ProductView {
	view := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		ImageURLs:   p.ImageURLs,
		CategoryID:  p.CategoryID,
		Variants:    variants,
	}
	if p.CategoryID != nil {
		view.CategoryName = categoryNames[*p.CategoryID]
	}
	return view
}

var _ Port = (*Service)(nil)
