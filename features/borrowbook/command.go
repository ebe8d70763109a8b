package borrowbook

import (
	"time"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

const (
	commandType = "BorrowBook"
)

// Command represents the intent of a user to borrow a book.
type Command struct {
	BookID     core.BookIDString
	UserID     core.UserIDString
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID core.BookIDString, user core.User, occurredAt time.Time) Command {
	return Command{
		BookID:     bookID,
		UserID:     user.ID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
