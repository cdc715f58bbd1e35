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
	"go.trai.ch/podlink/internal/adapters/telemetry"
	"go.trai.ch/podlink/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerWithProvider(tp, "test")
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "integrate",
		ports.WithAttribute("target", "Pods-App"),
		ports.WithAttribute("pod_targets", 3),
	)
	span.SetAttribute("uses_swift", true)
	span.SetAttribute("configurations", []string{"Debug", "Release"})
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("count", int64(7))
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "integrate", spans[0].Name())

	got := attrs(spans[0])
	assert.Equal(t, "Pods-App", got["target"].AsString())
	assert.Equal(t, int64(3), got["pod_targets"].AsInt64())
	assert.True(t, got["uses_swift"].AsBool())
	assert.Equal(t, []string{"Debug", "Release"}, got["configurations"].AsStringSlice())
	assert.InDelta(t, 0.5, got["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, int64(7), got["count"].AsInt64())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestOTelTracer_Nesting(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "report")
	_, child := tracer.Start(ctx, "integrate")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "integrate")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, gotCtx)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}
