package checkinvariant

import (
	"github.com/AntonStoeckl/lending-registry-go/core"
)

const (
	queryType = "CheckInvariant"

	// SatisfiedMessage is what gets logged when Verify finds nothing wrong.
	SatisfiedMessage = "Invariant is satisfied: All books have valid status."
)

// Query represents the intent to verify the consistency of the registry.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// State is a snapshot of the registry's two maps.
type State struct {
	Status   map[core.BookIDString]core.BookStatus
	Borrower map[core.BookIDString]core.UserIDString
}
