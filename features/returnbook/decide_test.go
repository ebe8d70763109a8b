package returnbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/features/returnbook"
)

func Test_Decide_Success_WhenBookIsBorrowedByThisUser(t *testing.T) {
	// arrange
	now := time.Now()
	state := core.BookState{BookID: "book2", Exists: true, Status: core.Borrowed, BorrowedBy: "userX"}
	command := returnbook.BuildCommand("book2", core.BuildUser("userX"), now)

	// act
	result := returnbook.Decide(state, command)

	// assert
	require.True(t, result.IsSuccess(), "decision should be a success")

	event, ok := result.Event.(core.BookReturnedByUser)
	require.True(t, ok, "event should be BookReturnedByUser")
	assert.Equal(t, "book2", event.BookID)
	assert.Equal(t, "userX", event.UserID)
	assert.Equal(t, core.ToOccurredAt(now), event.OccurredAt)
	assert.False(t, event.IsErrorEvent())
}

func Test_Decide_BusinessErrors(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name           string
		state          core.BookState
		userID         string
		expectedErr    error
		expectedReason string
	}{
		{
			name:           "book does not exist",
			state:          core.UnknownBook("book4"),
			userID:         "user123",
			expectedErr:    core.ErrBookNotFound,
			expectedReason: "book does not exist",
		},
		{
			name:           "book is available",
			state:          core.BookState{BookID: "book1", Exists: true, Status: core.Available},
			userID:         "user123",
			expectedErr:    core.ErrBookNotBorrowed,
			expectedReason: "book was not borrowed",
		},
		{
			name:           "book borrowed by another user",
			state:          core.BookState{BookID: "book2", Exists: true, Status: core.Borrowed, BorrowedBy: "userX"},
			userID:         "user123",
			expectedErr:    core.ErrWrongBorrower,
			expectedReason: "book was borrowed by another user",
		},
		{
			name:           "empty user id on a borrowed book",
			state:          core.BookState{BookID: "book2", Exists: true, Status: core.Borrowed, BorrowedBy: "userX"},
			userID:         "",
			expectedErr:    core.ErrWrongBorrower,
			expectedReason: "book was borrowed by another user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := returnbook.BuildCommand(tc.state.BookID, core.BuildUser(tc.userID), now)

			// act
			result := returnbook.Decide(tc.state, command)

			// assert
			assert.False(t, result.IsSuccess())
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)

			event, ok := result.Event.(core.ReturningBookFailed)
			require.True(t, ok, "event should be ReturningBookFailed")
			assert.Equal(t, tc.expectedReason, event.FailureInfo)
			assert.Equal(t, tc.userID, event.UserID)
		})
	}
}
