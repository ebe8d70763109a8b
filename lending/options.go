package lending

import (
	"time"
)

// Option defines a functional option for configuring a Registry.
type Option func(*Registry) error

// WithLogger sets the logger for the Registry.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: rejected operations with the violated precondition
// Info level: borrow and return notices, a satisfied invariant check
// Error level: invariant violations, failed postconditions, failed event recording.
func WithLogger(logger Logger) Option {
	return func(r *Registry) error {
		if logger == nil {
			return ErrNilLogger
		}

		r.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Registry.
// If both a Logger and a ContextualLogger are configured, the ContextualLogger wins,
// so that log records can be correlated with the active span.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(r *Registry) error {
		if logger == nil {
			return ErrNilContextualLogger
		}

		r.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Registry.
// The collector will receive operation durations, call and error counts, and the number of borrowed books.
func WithMetrics(collector MetricsCollector) Option {
	return func(r *Registry) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		r.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector for the Registry.
// Each operation runs in its own span.
func WithTracing(collector TracingCollector) Option {
	return func(r *Registry) error {
		if collector == nil {
			return ErrNilTracingCollector
		}

		r.tracingCollector = collector

		return nil
	}
}

// WithEventRecorder sets the recorder that receives every decided domain event.
func WithEventRecorder(recorder EventRecorder) Option {
	return func(r *Registry) error {
		if recorder == nil {
			return ErrNilEventRecorder
		}

		r.eventRecorder = recorder

		return nil
	}
}

// WithClock replaces time.Now as the source of event timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) error {
		if clock == nil {
			return ErrNilClock
		}

		r.clock = clock

		return nil
	}
}
