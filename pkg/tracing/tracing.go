// Package tracing wires OpenTelemetry tracing for optimizer runs.
package tracing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"k8s.io/klog/v2"
)

const (
	// TracerName names the tracer used by the optimizer.
	TracerName = "github.com/idaholab/raven/geneticalgorithm"

	defaultServiceName = "raven-ga"
	userAgent          = "raven-ga"
)

// Config selects where spans go. An empty Endpoint disables export.
type Config struct {
	ServiceName string
	Endpoint    string
	Insecure    bool
	// SampleRate is the fraction of root spans kept, 1 keeps all.
	SampleRate float64
}

var provider trace.TracerProvider = noop.NewTracerProvider()

// Init installs a tracer provider for cfg and returns its shutdown hook.
// The hook must be called before the process exits to flush pending spans.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		klog.FromContext(ctx).V(2).Info("Tracing disabled, no collector endpoint configured")
		provider = noop.NewTracerProvider()
		return func(context.Context) error { return nil }, nil
	}
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return nil, fmt.Errorf("sample rate %v outside [0, 1]", cfg.SampleRate)
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(userAgent)),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil && !errors.Is(err, resource.ErrSchemaURLConflict) {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = 1
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	provider = tp

	klog.FromContext(ctx).Info("Tracing enabled", "endpoint", cfg.Endpoint, "service", serviceName)
	return tp.Shutdown, nil
}

// Tracer returns the optimizer tracer from the installed provider.
func Tracer() trace.Tracer {
	return provider.Tracer(TracerName)
}
