package checkavailability

import (
	"github.com/AntonStoeckl/lending-registry-go/core"
)

const (
	queryType = "CheckAvailability"
)

// Query represents the intent to find out whether a book can be borrowed.
type Query struct {
	BookID core.BookIDString
}

// BuildQuery creates a new Query for the given book.
func BuildQuery(bookID core.BookIDString) Query {
	return Query{BookID: bookID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
