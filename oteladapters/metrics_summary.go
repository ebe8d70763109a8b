package oteladapters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// SummarizeMetrics collects everything reader has seen so far and renders one line per data point,
// e.g. `lending_operation_calls_total{operation=borrow,status=success} 1`. Lines are sorted.
func SummarizeMetrics(ctx context.Context, reader *sdkmetric.ManualReader) ([]string, error) {
	var resourceMetrics metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &resourceMetrics); err != nil {
		return nil, err
	}

	var lines []string

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s%s count=%d sum=%.6fs", m.Name, formatAttributes(dp.Attributes), dp.Count, dp.Sum))
				}
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s%s %d", m.Name, formatAttributes(dp.Attributes), dp.Value))
				}
			case metricdata.Gauge[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s%s %g", m.Name, formatAttributes(dp.Attributes), dp.Value))
				}
			}
		}
	}

	slices.Sort(lines)

	return lines, nil
}

func formatAttributes(set attribute.Set) string {
	if set.Len() == 0 {
		return ""
	}

	pairs := make([]string, 0, set.Len())
	for _, kv := range set.ToSlice() {
		pairs = append(pairs, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}

	return "{" + strings.Join(pairs, ",") + "}"
}
