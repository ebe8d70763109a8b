// Package shell is the imperative shell around the pure core.
//
// It turns domain events into StorableEvents (JSON payload plus JSON metadata) and back, and keeps the
// recorded events of the current process in an in-memory Journal. The Journal implements
// lending.EventRecorder, so a Registry can hand it every decided event.
package shell
