// Package otel wires OpenTelemetry tracing for console processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/inex/ixp-console/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings selects where spans are exported.
type Settings struct {
	Endpoint string `env:"IXP_CONSOLE_OTEL_ENDPOINT"`
	// Enabled turns tracing off when set to "false".
	Enabled string `env:"IXP_CONSOLE_OTEL_ENABLED"`
	// SampleRatio is the fraction of traces kept, from 0 to 1.
	SampleRatio float64 `env:"IXP_CONSOLE_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadSettings reads tracing settings from the environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) active() bool {
	return !strings.EqualFold(strings.TrimSpace(s.Enabled), "false") && strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	switch {
	case s.SampleRatio >= 1:
		return sdktrace.AlwaysSample()
	case s.SampleRatio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
	}
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when IXP_CONSOLE_OTEL_ENDPOINT is empty or
// IXP_CONSOLE_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	settings, err := LoadSettings()
	if err != nil {
		return noop, fmt.Errorf("load otel settings: %w", err)
	}
	if !settings.active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
