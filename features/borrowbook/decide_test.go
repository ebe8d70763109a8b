package borrowbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/features/borrowbook"
)

func Test_Decide_Success_WhenBookIsAvailable(t *testing.T) {
	// arrange
	now := time.Now()
	state := givenAvailableBook("book1")
	command := borrowbook.BuildCommand("book1", core.BuildUser("user123"), now)

	// act
	result := borrowbook.Decide(state, command)

	// assert
	require.True(t, result.IsSuccess(), "decision should be a success")
	assert.NoError(t, result.HasError())

	event, ok := result.Event.(core.BookLentToUser)
	require.True(t, ok, "event should be BookLentToUser")
	assert.Equal(t, "book1", event.BookID)
	assert.Equal(t, "user123", event.UserID)
	assert.Equal(t, core.ToOccurredAt(now), event.OccurredAt)
}

func Test_Decide_Success_WithEmptyUserID(t *testing.T) {
	// arrange
	command := borrowbook.BuildCommand("book1", core.BuildUser(""), time.Now())

	// act
	result := borrowbook.Decide(givenAvailableBook("book1"), command)

	// assert
	require.True(t, result.IsSuccess(), "decision should be a success")

	event, ok := result.Event.(core.BookLentToUser)
	require.True(t, ok, "event should be BookLentToUser")
	assert.Empty(t, event.UserID)
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
			name:           "book already borrowed by another user",
			state:          givenBorrowedBook("book2", "userX"),
			userID:         "user123",
			expectedErr:    core.ErrBookAlreadyBorrowed,
			expectedReason: "book is already borrowed",
		},
		{
			name:           "book already borrowed by the same user",
			state:          givenBorrowedBook("book2", "user123"),
			userID:         "user123",
			expectedErr:    core.ErrBookAlreadyBorrowed,
			expectedReason: "book is already borrowed",
		},
		{
			name:           "unknown book with empty user id",
			state:          core.UnknownBook("book4"),
			userID:         "",
			expectedErr:    core.ErrBookNotFound,
			expectedReason: "book does not exist",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := borrowbook.BuildCommand(tc.state.BookID, core.BuildUser(tc.userID), now)

			// act
			result := borrowbook.Decide(tc.state, command)

			// assert
			assertErrorDecision(t, result, tc.expectedErr, tc.expectedReason)
		})
	}
}

func Test_Command_CommandType(t *testing.T) {
	assert.Equal(t, "BorrowBook", borrowbook.Command{}.CommandType())
}

func givenAvailableBook(bookID string) core.BookState {
	return core.BookState{BookID: bookID, Exists: true, Status: core.Available}
}

func givenBorrowedBook(bookID string, userID string) core.BookState {
	return core.BookState{BookID: bookID, Exists: true, Status: core.Borrowed, BorrowedBy: userID}
}

func assertErrorDecision(t *testing.T, result core.DecisionResult, expectedErr error, expectedReason string) {
	t.Helper()

	assert.False(t, result.IsSuccess(), "decision should not be a success")
	assert.ErrorIs(t, result.HasError(), expectedErr)
	assert.Contains(t, result.HasError().Error(), core.BorrowingBookFailedEventType)

	event, ok := result.Event.(core.BorrowingBookFailed)
	require.True(t, ok, "event should be BorrowingBookFailed")
	assert.True(t, event.IsErrorEvent())
	assert.Equal(t, expectedReason, event.FailureInfo)
}
