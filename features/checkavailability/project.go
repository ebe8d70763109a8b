package checkavailability

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// Project implements the query logic for a single book.
//
// Query Logic:
//
//	GIVEN: The current BookState of the requested book
//	WHEN: CheckAvailability query is executed
//	THEN: AvailabilityReport with status and borrower (if any) is returned
//	ERROR: "book does not exist" if the registry does not know the book
func Project(state core.BookState, query Query) (AvailabilityReport, error) {
	if !state.Exists {
		return AvailabilityReport{}, fmt.Errorf("%s: book %s: %w", query.QueryType(), query.BookID, core.ErrBookNotFound)
	}

	report := AvailabilityReport{
		BookID: state.BookID,
		Status: state.Status,
	}

	if state.Status == core.Borrowed {
		report.BorrowedBy = state.BorrowedBy
	}

	return report, nil
}

// ProjectAll builds the AvailabilityReport of every given book, sorted by BookID.
// Unknown books are skipped.
func ProjectAll(states []core.BookState) AvailabilityReports {
	reports := make(AvailabilityReports, 0, len(states))

	for _, state := range states {
		report, err := Project(state, BuildQuery(state.BookID))
		if err != nil {
			continue
		}

		reports = append(reports, report)
	}

	slices.SortFunc(reports, func(a, b AvailabilityReport) int {
		return strings.Compare(a.BookID, b.BookID)
	})

	return reports
}
