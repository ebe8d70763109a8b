package checkavailability

import (
	"fmt"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// AvailabilityReport tells whether a book is available or who borrowed it.
type AvailabilityReport struct {
	BookID     core.BookIDString `json:"book_id"`
	Status     core.BookStatus   `json:"status"`
	BorrowedBy core.UserIDString `json:"borrowed_by,omitempty"`
}

// IsAvailable returns true if the book can be borrowed.
func (r AvailabilityReport) IsAvailable() bool {
	return r.Status == core.Available
}

// String renders the report as a human-readable status line.
func (r AvailabilityReport) String() string {
	if r.IsAvailable() {
		return fmt.Sprintf("Book %s is available.", r.BookID)
	}

	return fmt.Sprintf("Book %s is currently borrowed by user %s.", r.BookID, r.BorrowedBy)
}

// AvailabilityReports is the result of ProjectAll.
type AvailabilityReports = []AvailabilityReport
