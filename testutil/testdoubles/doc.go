// Package testdoubles provides test doubles (spies) for the observability and recording interfaces
// of the lending registry:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans and their attributes
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: captures slog handler calls and attributes
//   - EventRecorderSpy: captures recorded domain events and can be switched to fail
package testdoubles
