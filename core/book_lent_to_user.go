package core

import (
	"time"
)

// BookLentToUserEventType is the event type identifier.
const BookLentToUserEventType = "BookLentToUser"

// BookLentToUser represents when a book is lent to a user.
type BookLentToUser struct {
	BookID     BookIDString
	UserID     UserIDString
	OccurredAt OccurredAt
}

// BuildBookLentToUser creates a new BookLentToUser event.
func BuildBookLentToUser(bookID BookIDString, userID UserIDString, occurredAt time.Time) BookLentToUser {
	return BookLentToUser{
		BookID:     bookID,
		UserID:     userID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookLentToUser) EventType() string {
	return BookLentToUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToUser) IsErrorEvent() bool {
	return false
}
