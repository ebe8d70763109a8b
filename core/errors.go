package core

import "errors"

var (
	// ErrBookNotFound is returned when the book identifier is not known to the registry.
	ErrBookNotFound = errors.New("book does not exist")

	// ErrBookAlreadyBorrowed is returned when borrowing a book that is currently borrowed.
	ErrBookAlreadyBorrowed = errors.New("book is already borrowed")

	// ErrBookNotBorrowed is returned when returning a book that is currently available.
	ErrBookNotBorrowed = errors.New("book was not borrowed")

	// ErrWrongBorrower is returned when a user returns a book somebody else borrowed.
	ErrWrongBorrower = errors.New("book was borrowed by another user")

	// ErrInvariantViolation is returned when the registry state breaks one of its invariants.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrPostconditionFailed is returned when applying a decision did not produce the expected state.
	ErrPostconditionFailed = errors.New("postcondition failed")
)
