package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

const (
	// OperationDurationMetric tracks the duration of registry operations (OpenTelemetry-compatible).
	OperationDurationMetric = "lending_operation_duration_seconds"

	// OperationCallsMetric tracks total registry operation calls.
	OperationCallsMetric = "lending_operation_calls_total"

	// OperationErrorsMetric tracks failed registry operations, labeled with the error type.
	OperationErrorsMetric = "lending_operation_errors_total"

	// BooksBorrowedMetric is a gauge of how many books are currently borrowed.
	BooksBorrowedMetric = "lending_books_borrowed"

	// StatusSuccess indicates a successful operation.
	StatusSuccess = "success"

	// StatusError indicates a failed operation.
	StatusError = "error"

	// SpanNameBorrow is the tracing span name for Borrow.
	SpanNameBorrow = "lending.borrow"

	// SpanNameReturn is the tracing span name for ReturnBook.
	SpanNameReturn = "lending.return"

	// SpanNameCheckAvailability is the tracing span name for CheckAvailability.
	SpanNameCheckAvailability = "lending.check_availability"

	// SpanNameCheckInvariant is the tracing span name for CheckInvariant.
	SpanNameCheckInvariant = "lending.check_invariant"

	// SpanNameListBooks is the tracing span name for Books.
	SpanNameListBooks = "lending.list_books"

	// LabelOperation identifies the operation in metric labels and span attributes.
	LabelOperation = "operation"

	// LabelStatus carries StatusSuccess or StatusError.
	LabelStatus = "status"

	// LabelErrorType classifies a failure, see ErrorType.
	LabelErrorType = "error_type"

	// LabelBookID carries the book identifier in span attributes.
	LabelBookID = "book_id"

	// LabelUserID carries the user identifier in span attributes.
	LabelUserID = "user_id"
)

const (
	logMsgBorrowing          = "User %s is borrowing book: %s"
	logMsgReturning          = "User %s is returning book: %s"
	logMsgOperationRejected  = "lending operation rejected"
	logMsgOperationFailed    = "lending operation failed"
	logMsgRegistryCreated    = "lending registry created"
	logAttrOperation         = "operation"
	logAttrBookID            = "book_id"
	logAttrUserID            = "user_id"
	logAttrBookCount         = "book_count"
	logAttrError             = "error"
	logAttrErrorType         = "error_type"
	logAttrDurationMS        = "duration_ms"
	errorTypeNotFound        = "book_not_found"
	errorTypeAlreadyBorrowed = "book_already_borrowed"
	errorTypeNotBorrowed     = "book_not_borrowed"
	errorTypeWrongBorrower   = "wrong_borrower"
	errorTypeInvariant       = "invariant_violation"
	errorTypePostcondition   = "postcondition_failed"
	errorTypeRecording       = "recording_failed"
	errorTypeUnknown         = "unknown"
)

// Logger interface for operational logging, warnings, and error reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// *slog.Logger satisfies it.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting Registry performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods for better tracing integration.
// The Registry uses the context-aware methods when available and falls back to MetricsCollector otherwise.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from Registry operations.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// EventRecorder receives every domain event the Registry decides on, in decision order.
type EventRecorder interface {
	Record(ctx context.Context, event core.DomainEvent) error
}

// ErrorType classifies err into a low-cardinality label value for metrics and spans.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, core.ErrBookNotFound):
		return errorTypeNotFound
	case errors.Is(err, core.ErrBookAlreadyBorrowed):
		return errorTypeAlreadyBorrowed
	case errors.Is(err, core.ErrBookNotBorrowed):
		return errorTypeNotBorrowed
	case errors.Is(err, core.ErrWrongBorrower):
		return errorTypeWrongBorrower
	case errors.Is(err, core.ErrInvariantViolation):
		return errorTypeInvariant
	case errors.Is(err, core.ErrPostconditionFailed):
		return errorTypePostcondition
	case errors.Is(err, ErrRecordingEventFailed):
		return errorTypeRecording
	default:
		return errorTypeUnknown
	}
}

// isRejection reports whether err is a violated precondition, as opposed to a broken registry.
func isRejection(err error) bool {
	switch ErrorType(err) {
	case errorTypeNotFound, errorTypeAlreadyBorrowed, errorTypeNotBorrowed, errorTypeWrongBorrower:
		return true
	default:
		return false
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds.
func toMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// === Operation Observer Pattern ===
// The observer bundles span, metrics and failure logging of one registry operation.

type operationObserver struct {
	r         *Registry
	ctx       context.Context
	operation string
	span      SpanContext
	startedAt time.Time
}

// startOperation opens the span of an operation and starts its timer.
func (r *Registry) startOperation(
	ctx context.Context,
	operation string,
	spanName string,
	attrs map[string]string,
) (*operationObserver, context.Context) {

	spanAttrs := map[string]string{LabelOperation: operation}
	for key, value := range attrs {
		spanAttrs[key] = value
	}

	if r.tracingCollector != nil {
		ctx, span := r.tracingCollector.StartSpan(ctx, spanName, spanAttrs)

		return &operationObserver{r: r, ctx: ctx, operation: operation, span: span, startedAt: time.Now()}, ctx
	}

	return &operationObserver{r: r, ctx: ctx, operation: operation, startedAt: time.Now()}, ctx
}

// finish records metrics, closes the span and logs the failure if there was one.
func (o *operationObserver) finish(err error) {
	duration := time.Since(o.startedAt)

	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	labels := map[string]string{
		LabelOperation: o.operation,
		LabelStatus:    status,
	}

	o.r.recordDuration(o.ctx, OperationDurationMetric, duration, labels)
	o.r.incrementCounter(o.ctx, OperationCallsMetric, labels)

	spanAttrs := map[string]string{
		LabelStatus:       status,
		logAttrDurationMS: fmt.Sprintf("%.2f", toMilliseconds(duration)),
	}

	if err != nil {
		errorType := ErrorType(err)

		o.r.incrementCounter(o.ctx, OperationErrorsMetric, map[string]string{
			LabelOperation: o.operation,
			LabelErrorType: errorType,
		})

		spanAttrs[LabelErrorType] = errorType
		spanAttrs[logAttrError] = err.Error()

		if isRejection(err) {
			o.r.logDebug(o.ctx, logMsgOperationRejected, logAttrOperation, o.operation, logAttrErrorType, errorType, logAttrError, err.Error())
		} else {
			o.r.logError(o.ctx, logMsgOperationFailed, logAttrOperation, o.operation, logAttrErrorType, errorType, logAttrError, err.Error())
		}
	}

	if o.r.tracingCollector != nil && o.span != nil {
		o.r.tracingCollector.FinishSpan(o.span, status, spanAttrs)
	}
}

// recordDuration records a duration with context if the collector supports it.
func (r *Registry) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if r.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := r.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		r.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

// incrementCounter increments a counter with context if the collector supports it.
func (r *Registry) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if r.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := r.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		r.metricsCollector.IncrementCounter(metric, labels)
	}
}

// recordBorrowedBooks publishes the current size of the borrower map. Must be called with the lock held.
func (r *Registry) recordBorrowedBooks(ctx context.Context) {
	if r.metricsCollector == nil {
		return
	}

	value := float64(len(r.borrower))
	labels := map[string]string{}

	if contextualCollector, ok := r.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, BooksBorrowedMetric, value, labels)
	} else {
		r.metricsCollector.RecordValue(BooksBorrowedMetric, value, labels)
	}
}

// === Contextual Logging Pattern ===
// The ContextualLogger is preferred so that records carry trace correlation; the plain Logger is the fallback.

func (r *Registry) logDebug(ctx context.Context, msg string, args ...any) {
	if r.contextualLogger != nil {
		r.contextualLogger.DebugContext(ctx, msg, args...)
	} else if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *Registry) logInfo(ctx context.Context, msg string, args ...any) {
	if r.contextualLogger != nil {
		r.contextualLogger.InfoContext(ctx, msg, args...)
	} else if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Registry) logError(ctx context.Context, msg string, args ...any) {
	if r.contextualLogger != nil {
		r.contextualLogger.ErrorContext(ctx, msg, args...)
	} else if r.logger != nil {
		r.logger.Error(msg, args...)
	}
}
