// Package lending provides the in-memory lending registry.
//
// A Registry owns two maps, book to status and borrowed book to borrower, and guards both with one mutex.
// Borrow and ReturnBook read the BookState of the requested book, hand it to the pure Decide function of
// their feature package and apply the resulting success event to the maps. Every decided event, success
// or failure, is handed to an optional EventRecorder. Violated preconditions are returned as errors that
// wrap the sentinels in package core, so callers can react with errors.Is.
//
// Observability follows a dependency-free pattern: Logger, ContextualLogger, MetricsCollector and
// TracingCollector are small interfaces, and the oteladapters package provides OpenTelemetry implementations.
//
// Example:
//
//	registry, err := lending.NewRegistry(lending.DefaultSeed(), lending.WithLogger(slog.Default()))
//	if err != nil { ... }
//
//	if err := registry.Borrow(ctx, "book1", core.BuildUser("user123")); err != nil {
//		if errors.Is(err, core.ErrBookAlreadyBorrowed) { ... }
//	}
package lending
