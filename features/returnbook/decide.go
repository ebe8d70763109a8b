package returnbook

import (
	"fmt"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// Decide implements the business logic to determine whether a user can return a book.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: ReturnBook command is received
//	THEN: BookReturnedByUser event is generated
//	ERROR: "book does not exist" if the registry does not know the book
//	ERROR: "book was not borrowed" if the book is available
//	ERROR: "book was borrowed by another user" if the borrower is somebody else
func Decide(state core.BookState, command Command) core.DecisionResult {
	if !state.Exists {
		return failed(command, core.ErrBookNotFound)
	}

	if state.Status != core.Borrowed {
		return failed(command, core.ErrBookNotBorrowed)
	}

	if state.BorrowedBy != command.UserID {
		return failed(command, core.ErrWrongBorrower)
	}

	return core.SuccessDecision(
		core.BuildBookReturnedByUser(
			command.BookID,
			command.UserID,
			command.OccurredAt,
		),
	)
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildReturningBookFailed(command.BookID, command.UserID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: book %s: %w", event.EventType(), command.BookID, reason))
}
