package borrowbook

import (
	"fmt"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// Decide implements the business logic to determine whether a book can be lent to a user.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: BorrowBook command is received
//	THEN: BookLentToUser event is generated
//	ERROR: "book does not exist" if the registry does not know the book
//	ERROR: "book is already borrowed" if the book is lent to anyone, including this user
func Decide(state core.BookState, command Command) core.DecisionResult {
	if !state.Exists {
		return failed(command, core.ErrBookNotFound)
	}

	if state.Status != core.Available {
		return failed(command, core.ErrBookAlreadyBorrowed)
	}

	return core.SuccessDecision(
		core.BuildBookLentToUser(
			command.BookID,
			command.UserID,
			command.OccurredAt,
		),
	)
}

func failed(command Command, reason error) core.DecisionResult {
	event := core.BuildBorrowingBookFailed(command.BookID, command.UserID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: book %s: %w", event.EventType(), command.BookID, reason))
}
