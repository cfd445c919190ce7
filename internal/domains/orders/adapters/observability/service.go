package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

const tracerName = "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
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
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// ResolveCase resolves a delivery-delay case with instrumentation.
func (s *Service) ResolveCase(ctx context.Context, itemID string) (*ports.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "Service.ResolveCase",
		trace.WithAttributes(attribute.String("order.item_id", itemID)))
	defer span.End()

	s.logInfo(ctx, "resolving case", slog.String("order.item_id", itemID))
	resolution, err := s.inner.ResolveCase(ctx, itemID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.recordFailed(ctx)
		s.logError(ctx, "failed to resolve case", err, slog.String("order.item_id", itemID))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("case.outcome", string(resolution.Outcome)),
		attribute.Int("case.delay_days", resolution.DelayDays),
	)
	s.metrics.recordResolved(ctx, resolution.Outcome)
	s.logInfo(ctx, "case resolved",
		slog.String("order.item_id", itemID),
		slog.String("outcome", string(resolution.Outcome)),
		slog.Int("delay_days", resolution.DelayDays),
	)
	return resolution, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	casesResolved metric.Int64Counter
	casesFailed   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	casesResolved, _ := m.Int64Counter("orders.cases.resolved", metric.WithDescription("Number of cases resolved, by outcome"))
	casesFailed, _ := m.Int64Counter("orders.cases.failed", metric.WithDescription("Number of case resolutions that errored"))
	return serviceMetrics{casesResolved: casesResolved, casesFailed: casesFailed}
}

func (m serviceMetrics) recordResolved(ctx context.Context, outcome ports.Outcome) {
	addCounter(ctx, m.casesResolved, 1, attribute.String("case.outcome", string(outcome)))
}

func (m serviceMetrics) recordFailed(ctx context.Context) {
	addCounter(ctx, m.casesFailed, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
