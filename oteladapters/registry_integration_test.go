package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/lending"
	"github.com/AntonStoeckl/lending-registry-go/oteladapters"
	"github.com/AntonStoeckl/lending-registry-go/testutil/testdoubles"
)

func Test_Registry_WithOpenTelemetryAdapters(t *testing.T) {
	// arrange
	exporter := tracetest.NewInMemoryExporter()
	tracerProvider := trace.NewTracerProvider(trace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	logger := testdoubles.NewContextualLoggerSpy(true)

	registry, err := lending.NewRegistry(
		lending.DefaultSeed(),
		lending.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("lending"))),
		lending.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("lending"))),
		lending.WithContextualLogger(logger),
	)
	require.NoError(t, err)

	// act
	require.NoError(t, registry.Borrow(context.Background(), "book1", core.BuildUser("user123")))
	notFoundErr := registry.ReturnBook(context.Background(), "book4", core.BuildUser("user123"))

	// assert
	require.ErrorIs(t, notFoundErr, core.ErrBookNotFound)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, lending.SpanNameBorrow, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, lending.SpanNameReturn, spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assertSpanHasAttribute(t, spans[1], "error_type", "book_not_found")

	borrowLogs := logger.GetRecords("info")
	var borrowLogFound bool
	for _, record := range borrowLogs {
		if record.Message == "User user123 is borrowing book: book1" {
			borrowLogFound = true
			assert.Equal(t, spans[0].SpanContext.TraceID(), oteltrace.SpanContextFromContext(record.Context).TraceID())
		}
	}
	assert.True(t, borrowLogFound)

	lines, err := oteladapters.SummarizeMetrics(context.Background(), reader)
	require.NoError(t, err)
	assert.Contains(t, lines, "lending_operation_calls_total{operation=borrow,status=success} 1")
	assert.Contains(t, lines, "lending_operation_errors_total{error_type=book_not_found,operation=return} 1")
	assert.Contains(t, lines, "lending_books_borrowed 2")
}
