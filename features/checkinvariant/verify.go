package checkinvariant

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// Verify implements the query logic.
//
// Query Logic:
//
//	GIVEN: A snapshot of the status map and the borrower map
//	WHEN: CheckInvariant query is executed
//	THEN: nil if every status is valid and the borrower map holds exactly the borrowed books
//	ERROR: "invariant violation" once per offending book, joined, ordered by BookID
func Verify(state State, query Query) error {
	var violations []error

	for _, bookID := range slices.Sorted(maps.Keys(state.Status)) {
		status := state.Status[bookID]
		borrower, hasBorrower := state.Borrower[bookID]

		switch {
		case !status.IsValid():
			violations = append(violations, violation(query, "book %s has status %s", bookID, status))
		case status == core.Borrowed && !hasBorrower:
			violations = append(violations, violation(query, "book %s is borrowed but has no borrower", bookID))
		case status == core.Available && hasBorrower:
			violations = append(violations, violation(query, "book %s is available but borrowed by user %s", bookID, borrower))
		}
	}

	for _, bookID := range slices.Sorted(maps.Keys(state.Borrower)) {
		if _, known := state.Status[bookID]; !known {
			violations = append(violations, violation(query, "unknown book %s has a borrower", bookID))
		}
	}

	return errors.Join(violations...)
}

func violation(query Query, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", query.QueryType(), fmt.Sprintf(format, args...), core.ErrInvariantViolation)
}
