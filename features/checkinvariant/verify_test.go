package checkinvariant_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/features/checkinvariant"
)

func consistentState() checkinvariant.State {
	return checkinvariant.State{
		Status: map[core.BookIDString]core.BookStatus{
			"book1": core.Available,
			"book2": core.Borrowed,
			"book3": core.Available,
		},
		Borrower: map[core.BookIDString]core.UserIDString{
			"book2": "userX",
		},
	}
}

func Test_Verify_ConsistentState(t *testing.T) {
	// act
	err := checkinvariant.Verify(consistentState(), checkinvariant.BuildQuery())

	// assert
	assert.NoError(t, err)
}

func Test_Verify_EmptyState(t *testing.T) {
	// act
	err := checkinvariant.Verify(checkinvariant.State{}, checkinvariant.BuildQuery())

	// assert
	assert.NoError(t, err)
}

func Test_Verify_InvalidStatus(t *testing.T) {
	// arrange
	state := consistentState()
	state.Status["book3"] = core.BookStatus(7)

	// act
	err := checkinvariant.Verify(state, checkinvariant.BuildQuery())

	// assert
	require.ErrorIs(t, err, core.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "book book3 has status invalid(7)")
}

func Test_Verify_BorrowedBookWithoutBorrower(t *testing.T) {
	// arrange
	state := consistentState()
	delete(state.Borrower, "book2")

	// act
	err := checkinvariant.Verify(state, checkinvariant.BuildQuery())

	// assert
	require.ErrorIs(t, err, core.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "book book2 is borrowed but has no borrower")
}

func Test_Verify_AvailableBookWithBorrower(t *testing.T) {
	// arrange
	state := consistentState()
	state.Borrower["book1"] = "user123"

	// act
	err := checkinvariant.Verify(state, checkinvariant.BuildQuery())

	// assert
	require.ErrorIs(t, err, core.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "book book1 is available but borrowed by user user123")
}

func Test_Verify_BorrowerForUnknownBook(t *testing.T) {
	// arrange
	state := consistentState()
	state.Borrower["book9"] = "user123"

	// act
	err := checkinvariant.Verify(state, checkinvariant.BuildQuery())

	// assert
	require.ErrorIs(t, err, core.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "unknown book book9 has a borrower")
}

func Test_Verify_ReportsAllViolationsOrderedByBookID(t *testing.T) {
	// arrange
	state := consistentState()
	state.Status["book3"] = 0
	delete(state.Borrower, "book2")

	// act
	err := checkinvariant.Verify(state, checkinvariant.BuildQuery())

	// assert
	require.ErrorIs(t, err, core.ErrInvariantViolation)
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "book2")
	assert.Contains(t, lines[1], "book3")
}
