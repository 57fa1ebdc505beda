package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
)

const tracerName = "github.com/retaildesk/storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersapp.Port
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

// New wraps the core order service.
func New(inner ordersapp.Port, opts ...Option) ordersapp.Port {
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

func (s *Service) PlaceOrder(ctx context.Context, input ordersapp.PlaceOrderInput) (*ordersapp.Confirmation, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(attribute.Int("order.items", len(input.Items))))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int("items", len(input.Items)))
	result, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx)
		return nil, s.handleError(ctx, span, err, "failed to place order")
	}
	s.metrics.recordPlaced(ctx, result.Total)
	s.logInfo(ctx, "order placed",
		slog.String("order.number", result.OrderNumber),
		slog.Float64("order.total", result.Total))
	span.SetAttributes(attribute.String("order.number", result.OrderNumber))
	return result, nil
}

func (s *Service) OrderStatus(ctx context.Context, orderNumber string) (*ordersapp.StatusView, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.OrderStatus",
		trace.WithAttributes(attribute.String("order.number", orderNumber)))
	defer span.End()

	result, err := s.inner.OrderStatus(ctx, orderNumber)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order status",
			slog.String("order.number", orderNumber))
	}
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
	ordersPlaced   metric.Int64Counter
	ordersRejected metric.Int64Counter
	orderTotals    metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("orders.service.placed", metric.WithDescription("Number of orders placed"))
	rejected, _ := m.Int64Counter("orders.service.rejected", metric.WithDescription("Number of order placements rejected"))
	totals, _ := m.Float64Histogram("orders.service.totals", metric.WithDescription("Order total amounts"))
	return serviceMetrics{ordersPlaced: placed, ordersRejected: rejected, orderTotals: totals}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, total float64) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.orderTotals != nil {
		m.orderTotals.Record(ctx, total)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1)
	}
}

var _ ordersapp.Port = (*Service)(nil)
