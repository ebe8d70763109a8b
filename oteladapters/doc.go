// Package oteladapters provides OpenTelemetry adapters for the observability interfaces of package lending.
// These adapters enable integration with OpenTelemetry without implementing the interfaces yourself:
//   - MetricsCollector maps durations, counters and values onto histograms, counters and gauges
//   - TracingCollector creates one span per registry operation
//   - SlogBridgeLogger writes to a console slog.Handler and to the OpenTelemetry slog bridge at once
package oteladapters
