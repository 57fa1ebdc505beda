package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	catalogdomain "github.com/retaildesk/storefront-api/internal/domains/catalog/domain"
)

const tracerName = "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogapp.Port
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogapp.Port, opts ...Option) catalogapp.Port {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ListProducts(ctx context.Context, input catalogapp.ListProductsInput) (*catalogapp.ProductListing, error) {
	attrs := []attribute.KeyValue{attribute.Int("page", input.Page.Page)}
	if input.CategoryID != nil {
		attrs = append(attrs, attribute.Int64("category.id", *input.CategoryID))
	}
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts", trace.WithAttributes(attrs...))
	defer span.End()

	result, err := s.inner.ListProducts(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	s.metrics.recordListing(ctx)
	span.SetAttributes(attribute.Int("products.count", len(result.Products)))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*catalogapp.ProductView, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*catalogdomain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListCategories")
	defer span.End()

	result, err := s.inner.ListCategories(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list categories")
	}
	return result, nil
}

func (s *Service) LowStockReport(ctx context.Context) (*catalogapp.LowStockReport, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.LowStockReport")
	defer span.End()

	s.logInfo(ctx, "building low stock report")
	result, err := s.inner.LowStockReport(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build low stock report")
	}
	s.metrics.recordLowStock(ctx, len(result.Variants))
	span.SetAttributes(
		attribute.Int("report.threshold", result.Threshold),
		attribute.Int("report.flagged", len(result.Variants)),
	)
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	listings        metric.Int64Counter
	lowStockFlagged metric.Int64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	listings, _ := m.Int64Counter("catalog.service.listings", metric.WithDescription("Number of product listings served"))
	flagged, _ := m.Int64Histogram("catalog.service.low_stock_flagged", metric.WithDescription("Variants flagged per low-stock report"))
	return serviceMetrics{listings: listings, lowStockFlagged: flagged}
}

func (m serviceMetrics) recordListing(ctx context.Context) {
	if m.listings != nil {
		m.listings.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLowStock(ctx context.Context, flagged int) {
	if m.lowStockFlagged != nil {
		m.lowStockFlagged.Record(ctx, int64(flagged))
	}
}

var _ catalogapp.Port = (*Service)(nil)
