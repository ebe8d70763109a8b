package core

import (
	"errors"
	"fmt"
)

// ErrInvalidBookStatus is returned when text can not be parsed into a BookStatus.
var ErrInvalidBookStatus = errors.New("invalid book status")

// BookStatus is the lending state of a book.
// The zero value is deliberately not a valid status so that a corrupted entry can be detected.
type BookStatus uint8

const (
	// Available means the book is on the shelf and can be borrowed.
	Available BookStatus = iota + 1

	// Borrowed means the book is currently lent to a user.
	Borrowed
)

const (
	availableText = "available"
	borrowedText  = "borrowed"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s BookStatus) IsValid() bool {
	return s == Available || s == Borrowed
}

// String provides a string representation of BookStatus for logging and output.
func (s BookStatus) String() string {
	switch s {
	case Available:
		return availableText
	case Borrowed:
		return borrowedText
	default:
		return fmt.Sprintf("invalid(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler, so statuses serialize as "available" / "borrowed".
func (s BookStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBookStatus, uint8(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BookStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseBookStatus(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ParseBookStatus converts the text form of a status back into a BookStatus.
func ParseBookStatus(text string) (BookStatus, error) {
	switch text {
	case availableText:
		return Available, nil
	case borrowedText:
		return Borrowed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBookStatus, text)
	}
}
