package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/lending-registry-go/oteladapters"
)

func newMeterWithReader() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return reader, oteladapters.NewMetricsCollector(provider.Meter("test"))
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	reader, collector := newMeterWithReader()
	labels := map[string]string{"operation": "borrow", "status": "success"}

	// act
	collector.RecordDuration("lending_operation_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "lending_operation_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("operation", "borrow"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	reader, collector := newMeterWithReader()
	labels := map[string]string{"operation": "return", "status": "error"}

	// act
	collector.IncrementCounter("lending_operation_calls_total", labels)
	collector.IncrementCounterContext(context.Background(), "lending_operation_calls_total", labels)
	collector.IncrementCounter("lending_operation_calls_total", labels)

	// assert
	counter := findCounterMetric(t, collect(t, reader), "lending_operation_calls_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	reader, collector := newMeterWithReader()

	// act
	collector.RecordValue("lending_books_borrowed", 1, nil)
	collector.RecordValueContext(context.Background(), "lending_books_borrowed", 2, nil)

	// assert
	gauge := findGaugeMetric(t, collect(t, reader), "lending_books_borrowed")
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, float64(2), gauge.DataPoints[0].Value)
}

func Test_SummarizeMetrics(t *testing.T) {
	// arrange
	reader, collector := newMeterWithReader()
	collector.IncrementCounter("lending_operation_calls_total", map[string]string{"status": "success", "operation": "borrow"})
	collector.RecordValue("lending_books_borrowed", 2, nil)
	collector.RecordDuration("lending_operation_duration_seconds", time.Second, map[string]string{"operation": "borrow"})

	// act
	lines, err := oteladapters.SummarizeMetrics(context.Background(), reader)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{
		"lending_books_borrowed 2",
		"lending_operation_calls_total{operation=borrow,status=success} 1",
		"lending_operation_duration_seconds{operation=borrow} count=1 sum=1.000000s",
	}, lines)
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Histogram[float64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if h, ok := metric.Data.(metricdata.Histogram[float64]); ok {
					return &h
				}
			}
		}
	}
	t.Fatalf("Histogram metric %s not found", name)
	return nil
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Sum[int64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if c, ok := metric.Data.(metricdata.Sum[int64]); ok {
					return &c
				}
			}
		}
	}
	t.Fatalf("Counter metric %s not found", name)
	return nil
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) *metricdata.Gauge[float64] {
	t.Helper()
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, metric := range scopeMetrics.Metrics {
			if metric.Name == name {
				if g, ok := metric.Data.(metricdata.Gauge[float64]); ok {
					return &g
				}
			}
		}
	}
	t.Fatalf("Gauge metric %s not found", name)
	return nil
}
