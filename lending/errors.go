package lending

import "errors"

var (
	ErrInvalidSeed         = errors.New("invalid seed")
	ErrNilLogger           = errors.New("nil logger supplied")
	ErrNilContextualLogger = errors.New("nil contextual logger supplied")
	ErrNilMetricsCollector = errors.New("nil metrics collector supplied")
	ErrNilTracingCollector = errors.New("nil tracing collector supplied")
	ErrNilEventRecorder    = errors.New("nil event recorder supplied")
	ErrNilClock            = errors.New("nil clock supplied")
)

// ErrRecordingEventFailed wraps any error returned by the configured EventRecorder.
var ErrRecordingEventFailed = errors.New("recording event failed")
