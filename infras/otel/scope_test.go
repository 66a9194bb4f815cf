package otel_test

import (
	"context"
	"errors"
	"hotel/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newSpan(t *testing.T) (*tracetest.SpanRecorder, otel.Scope) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.intake")

	return recorder, otel.NewScope(span)
}

func TestScope_SetAttributes(t *testing.T) {
	recorder, scope := newSpan(t)

	scope.SetAttributes(map[string]any{
		"room_type_id": "standard",
		"nights":       3,
		"confirmed":    true,
		"check_in":     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		"total":        4500.5,
	})
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "standard", attrs["room_type_id"].AsString())
	assert.Equal(t, int64(3), attrs["nights"].AsInt64())
	assert.True(t, attrs["confirmed"].AsBool())
	assert.Equal(t, "2026-03-14T00:00:00Z", attrs["check_in"].AsString())
	assert.InDelta(t, 4500.5, attrs["total"].AsFloat64(), 0.001)
}

func TestScope_TraceIfError(t *testing.T) {
	recorder, scope := newSpan(t)

	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("no rooms left"))
	scope.End()

	span := recorder.Ended()[0]

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "no rooms left", span.Status().Description)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "exception", span.Events()[0].Name)
}
