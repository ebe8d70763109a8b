package core

import (
	"time"
)

// BookRegisteredEventType is the event type identifier.
const BookRegisteredEventType = "BookRegistered"

// BookRegistered represents a book entering the registry when it is seeded.
type BookRegistered struct {
	BookID     BookIDString
	Status     BookStatus
	BorrowedBy UserIDString
	OccurredAt OccurredAt
}

// BuildBookRegistered creates a new BookRegistered event.
func BuildBookRegistered(
	bookID BookIDString,
	status BookStatus,
	borrowedBy UserIDString,
	occurredAt time.Time,
) BookRegistered {

	return BookRegistered{
		BookID:     bookID,
		Status:     status,
		BorrowedBy: borrowedBy,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookRegistered) EventType() string {
	return BookRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRegistered) IsErrorEvent() bool {
	return false
}
