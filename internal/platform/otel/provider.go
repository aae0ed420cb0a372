// SPDX-License-Identifier: MIT

// Package otel wires OpenTelemetry tracing for the seatplan binaries.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used by the planner.
const TracerName = "github.com/katalvlaran/seatplan"

// Config selects the trace exporter. An empty Endpoint or Enabled=false
// leaves the global no-op provider in place.
type Config struct {
	Endpoint    string  `env:"SEATPLAN_OTEL_ENDPOINT"`
	Enabled     bool    `env:"SEATPLAN_OTEL_ENABLED" envDefault:"true"`
	SampleRatio float64 `env:"SEATPLAN_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether Setup would install an exporter.
func (c Config) Active() bool { return c.Enabled && c.Endpoint != "" }

// Setup installs a batching OTLP/HTTP provider for service and returns its
// flush func. Inactive configs return a flush that does nothing.
func Setup(ctx context.Context, service string, cfg Config) (func(context.Context) error, error) {
	if !cfg.Active() {
		return func(context.Context) error { return nil }, nil
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return nil, fmt.Errorf("otel: sample ratio %v outside [0,1]", cfg.SampleRatio)
	}

	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("otel: exporter: %w", err)
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(service)),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, fmt.Errorf("otel: resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

// Tracer returns the seatplan tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
