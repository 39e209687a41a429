// Package telemetry traces terminal dispatches over OTLP.
package telemetry

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "termfolio/shell"

// Provider owns the tracer used for dispatch spans.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an OTLP-backed provider if OTEL_EXPORTER_OTLP_ENDPOINT is set,
// otherwise a no-op one. The exporter reads the endpoint URL (scheme
// included) from the standard OTEL_EXPORTER_OTLP_* variables. Export errors
// go to logger instead of stderr, which the terminal UI owns.
func New(ctx context.Context, logger *slog.Logger) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return Disabled(), nil
	}
	SetErrorLogger(logger)

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "termfolio"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}, nil
}

// SetErrorLogger sends OpenTelemetry's internal errors to logger.
func SetErrorLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("otel", "error", err)
	}))
}

// Disabled returns a provider whose spans are dropped.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// NewWithTracerProvider wraps an existing SDK provider (used in tests with
// an in-memory exporter).
func NewWithTracerProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, tracer: tp.Tracer(tracerName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the dispatch tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return Disabled().tracer
	}
	return p.tracer
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attribute keys on dispatch spans.
const (
	AttrSession = attribute.Key("termfolio.session")
	AttrCommand = attribute.Key("termfolio.command")
	AttrSource  = attribute.Key("termfolio.source")
	AttrModeIn  = attribute.Key("termfolio.mode.from")
	AttrModeOut = attribute.Key("termfolio.mode.to")
	AttrOutcome = attribute.Key("termfolio.outcome")
)
