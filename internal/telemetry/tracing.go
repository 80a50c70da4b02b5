package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/osa911/portfolio/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

// Config selects where spans are exported
type Config struct {
	ServiceName string
	Version     string
	Environment string
	// Endpoint is host:port or a URL of an OTLP gRPC collector; empty disables export
	Endpoint string
	Insecure bool
}

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(ctx context.Context) error

// InitTracer installs the global tracer provider and propagators.
// Without an endpoint spans are still created but never exported.
func InitTracer(ctx context.Context, config Config) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if config.Endpoint == "" {
		logging.GetGlobalLogger().Info("Tracing export disabled: no OTLP endpoint configured")
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{}
	if strings.Contains(config.Endpoint, "://") {
		opts = append(opts, otlptracegrpc.WithEndpointURL(config.Endpoint))
	} else {
		opts = append(opts, otlptracegrpc.WithEndpoint(config.Endpoint))
	}
	if config.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.Version),
		attribute.String("deployment.environment", config.Environment),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	logging.GetGlobalLogger().Info("Tracing enabled, exporting to %s", config.Endpoint)
	return provider.Shutdown, nil
}
