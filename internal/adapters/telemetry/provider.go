package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// Setup installs a global SDK tracer provider whose spans are written to the
// logger at debug level. The returned function flushes and shuts it down.
func Setup(logger ports.Logger, extra ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}
	for _, sp := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(sp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
