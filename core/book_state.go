package core

// BookState is what the Decide functions and projections get to see of a single book.
type BookState struct {
	BookID     BookIDString
	Exists     bool
	Status     BookStatus
	BorrowedBy UserIDString
}

// UnknownBook builds the state of a book the registry does not know.
func UnknownBook(bookID BookIDString) BookState {
	return BookState{BookID: bookID}
}
