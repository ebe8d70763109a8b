package lending

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// SeedEntry describes one book the registry starts with.
type SeedEntry struct {
	BookID     core.BookIDString
	Status     core.BookStatus
	BorrowedBy core.UserIDString
}

// Seed is the fixed set of books a Registry is built from.
type Seed []SeedEntry

// DefaultSeed returns the reference catalog: book1 and book3 are available, book2 is borrowed by userX.
func DefaultSeed() Seed {
	return Seed{
		{BookID: "book1", Status: core.Available},
		{BookID: "book2", Status: core.Borrowed, BorrowedBy: "userX"},
		{BookID: "book3", Status: core.Available},
	}
}

// Validate checks every entry and returns all problems found, each wrapping ErrInvalidSeed.
func (s Seed) Validate() error {
	var problems []error

	seen := make(map[core.BookIDString]struct{}, len(s))

	for i, entry := range s {
		if entry.BookID == "" {
			problems = append(problems, fmt.Errorf("%w: entry %d has an empty book id", ErrInvalidSeed, i))
			continue
		}

		if _, duplicate := seen[entry.BookID]; duplicate {
			problems = append(problems, fmt.Errorf("%w: book %s is listed twice", ErrInvalidSeed, entry.BookID))
		}

		seen[entry.BookID] = struct{}{}

		switch {
		case !entry.Status.IsValid():
			problems = append(problems, fmt.Errorf("%w: book %s has status %s", ErrInvalidSeed, entry.BookID, entry.Status))
		case entry.Status == core.Borrowed && entry.BorrowedBy == "":
			problems = append(problems, fmt.Errorf("%w: book %s is borrowed but has no borrower", ErrInvalidSeed, entry.BookID))
		case entry.Status == core.Available && entry.BorrowedBy != "":
			problems = append(problems, fmt.Errorf("%w: book %s is available but has a borrower", ErrInvalidSeed, entry.BookID))
		}
	}

	return errors.Join(problems...)
}
