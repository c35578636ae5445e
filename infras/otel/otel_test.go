package otel_test

import (
	"context"
	"errors"
	"kasaglow/config"
	"kasaglow/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpointStillTraces(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "kasaglow-test"

	o := otel.New(cfg)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Test")
	defer scope.End()

	span := oteltrace.SpanFromContext(ctx)
	assert.True(t, span.SpanContext().IsValid())

	scope.SetAttributes(map[string]any{
		"flag":  true,
		"name":  "deep cleaning",
		"count": 3,
		"cents": int64(2500),
		"tags":  []string{"a", "b"},
		"other": 1.5,
	})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
}

func TestScope_SetAttributeTypes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "slots")
	scope := otel.NewScope(span)

	start := time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)

	scope.SetAttributes(map[string]any{
		"slot.start":    start,
		"slot.duration": 150 * time.Minute,
		"ratio":         0.5,
	})
	scope.TraceIfError(errors.New("slot taken"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "2030-03-04T10:00:00Z", attrs["slot.start"].AsString())
	assert.Equal(t, int64(150*60*1000), attrs["slot.duration"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "slot taken", ended[0].Status().Description)
}
