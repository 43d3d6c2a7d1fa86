package tracing

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitProvider_Disabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown := InitProvider("publications-api", "test", false, slog.Default())
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, prev, otel.GetTracerProvider())
}

func TestInitProvider_EnabledExportsToLog(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	shutdown := InitProvider("publications-api", "test", true, logger)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	require.True(t, ok, "sdk provider should be installed")

	_, span := GetTracer().Start(context.Background(), "media.Create")
	span.End()

	// Shutdown flushes the batcher.
	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"name":"media.Create"`)
	assert.Contains(t, buf.String(), `"trace_id"`)
}

func TestLogExporter_NilLogger(t *testing.T) {
	e := NewLogExporter(nil)
	assert.NoError(t, e.ExportSpans(context.Background(), nil))
	assert.NoError(t, e.Shutdown(context.Background()))
}
