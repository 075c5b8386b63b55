package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/saltbundle/internal/adapters/telemetry"
	"go.trai.ch/saltbundle/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	shutdown := telemetry.Setup(nil, sr)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return sr
}

func attributeMap(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_Start_AppliesOptions(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "find_file",
		ports.WithAttribute("path", "nginx/init.sls"),
		ports.WithAttribute("env", "base"),
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "find_file", spans[0].Name())

	attrs := attributeMap(spans[0])
	assert.Equal(t, "nginx/init.sls", attrs["path"].AsString())
	assert.Equal(t, "base", attrs["env"].AsString())
}

func TestOTelSpan_SetAttribute_Types(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "attrs")
	span.SetAttribute("string", "v")
	span.SetAttribute("int", 3)
	span.SetAttribute("int64", int64(4))
	span.SetAttribute("float", 1.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"mysql", "nginx"})
	span.SetAttribute("other", struct{ N int }{N: 7})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := attributeMap(spans[0])

	assert.Equal(t, "v", attrs["string"].AsString())
	assert.Equal(t, int64(3), attrs["int"].AsInt64())
	assert.Equal(t, int64(4), attrs["int64"].AsInt64())
	assert.InDelta(t, 1.5, attrs["float"].AsFloat64(), 0)
	assert.True(t, attrs["bool"].AsBool())
	assert.Equal(t, []string{"mysql", "nginx"}, attrs["slice"].AsStringSlice())
	assert.Equal(t, "{7}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "hash_file")
	span.RecordError(errors.New("unsupported hash algorithm"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "unsupported hash algorithm", spans[0].Status().Description)
}

func TestOTelSpan_RecordError_Nil(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "serve_file")
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
