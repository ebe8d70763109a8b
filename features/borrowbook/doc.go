// Package borrowbook implements the Borrow Book use case.
//
// A user may borrow a book that is known to the registry and currently available.
// The business logic lives in the pure Decide function; the registry owns the state,
// hands the current BookState to Decide and applies or records the resulting event.
//
// Failed decisions produce a BorrowingBookFailed event together with an error that
// wraps one of the core sentinel errors.
package borrowbook
