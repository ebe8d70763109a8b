package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

func Test_SuccessDecision(t *testing.T) {
	// arrange
	event := core.BuildBookLentToUser("book1", "user123", time.Now())

	// act
	result := core.SuccessDecision(event)

	// assert
	assert.True(t, result.IsSuccess())
	assert.NoError(t, result.HasError())
	assert.Equal(t, event, result.Event)
}

func Test_ErrorDecision(t *testing.T) {
	// arrange
	event := core.BuildBorrowingBookFailed("book1", "user123", "book is already borrowed", time.Now())
	err := errors.New("boom")

	// act
	result := core.ErrorDecision(event, err)

	// assert
	assert.False(t, result.IsSuccess())
	assert.Equal(t, err, result.HasError())
	assert.True(t, result.Event.IsErrorEvent())
}

func Test_ToOccurredAt_NormalizesToUTCMicroseconds(t *testing.T) {
	// arrange
	location := time.FixedZone("UTC+2", 2*60*60)
	input := time.Date(2024, 5, 17, 10, 30, 0, 123456789, location)

	// act
	occurredAt := core.ToOccurredAt(input)

	// assert
	assert.Equal(t, time.UTC, occurredAt.Location())
	assert.Equal(t, 123456000, occurredAt.Nanosecond())
	assert.True(t, input.Truncate(time.Microsecond).Equal(occurredAt))
}
