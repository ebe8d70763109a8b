package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// BookIDString represents a book identifier.
type BookIDString = string

// UserIDString represents a user (patron) identifier.
type UserIDString = string

// OccurredAt represents when an event occurred.
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}

// User is a patron of the library. Nothing but the identifier is modeled.
type User struct {
	ID UserIDString
}

// BuildUser creates a User with the given identifier.
func BuildUser(id UserIDString) User {
	return User{ID: id}
}
