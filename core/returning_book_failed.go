package core

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when returning a book fails due to a violated precondition.
type ReturningBookFailed struct {
	BookID      BookIDString
	UserID      UserIDString
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(
	bookID BookIDString,
	userID UserIDString,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFailed {

	return ReturningBookFailed{
		BookID:      bookID,
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ReturningBookFailed) EventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failure condition.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
