// Package otel configures OpenTelemetry tracing for tracker commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	envEnabled  = "COVIDTRACKER_OTEL_ENABLED"
	envEndpoint = "COVIDTRACKER_OTEL_ENDPOINT"
)

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when COVIDTRACKER_OTEL_ENDPOINT is empty or
// COVIDTRACKER_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and the global provider stays the default no-op provider.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(envEnabled), "false") {
		return noop, nil
	}

	endpoint := strings.TrimSpace(os.Getenv(envEndpoint))
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a tracer from the global provider scoped to the tracker
// instrumentation name.
func Tracer(component string) trace.Tracer {
	name := "github.com/louisbranch/covidtracker"
	if component = strings.TrimSpace(component); component != "" {
		name += "/" + component
	}
	return otel.Tracer(name)
}
