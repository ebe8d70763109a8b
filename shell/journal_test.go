package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/lending"
	"github.com/AntonStoeckl/lending-registry-go/shell"
)

var _ lending.EventRecorder = (*shell.Journal)(nil)

func allEventTypes(occurredAt time.Time) core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookRegistered("book2", core.Borrowed, "userX", occurredAt),
		core.BuildBookLentToUser("book1", "user123", occurredAt),
		core.BuildBookReturnedByUser("book1", "user123", occurredAt),
		core.BuildBorrowingBookFailed("book4", "user123", core.ErrBookNotFound.Error(), occurredAt),
		core.BuildReturningBookFailed("book2", "user123", core.ErrWrongBorrower.Error(), occurredAt),
	}
}

func Test_Journal_RoundTrip(t *testing.T) {
	// arrange
	journal := shell.NewJournal()
	events := allEventTypes(time.Now())

	// act
	for _, event := range events {
		require.NoError(t, journal.Record(context.Background(), event))
	}

	domainEvents, err := journal.DomainEvents()

	// assert
	require.NoError(t, err)
	assert.Equal(t, events, domainEvents)
}

func Test_Journal_AssignsSequenceNumbers(t *testing.T) {
	// arrange
	journal := shell.NewJournal()

	// act
	for _, event := range allEventTypes(time.Now()) {
		require.NoError(t, journal.Record(context.Background(), event))
	}

	// assert
	entries := journal.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, 5, journal.Len())

	for i, entry := range entries {
		assert.Equal(t, uint(i+1), entry.SequenceNumber)
	}

	assert.Equal(t, core.BookRegisteredEventType, entries[0].EventType)
	assert.Equal(t, core.ReturningBookFailedEventType, entries[4].EventType)
}

func Test_Journal_UsesCorrelationIDFromContext(t *testing.T) {
	// arrange
	journal := shell.NewJournal()
	correlationID := uuid.New()
	ctx := shell.WithCorrelationID(context.Background(), correlationID)

	// act
	require.NoError(t, journal.Record(ctx, core.BuildBookLentToUser("book1", "user123", time.Now())))
	require.NoError(t, journal.Record(ctx, core.BuildBookReturnedByUser("book1", "user123", time.Now())))

	// assert
	entries := journal.Entries()
	require.Len(t, entries, 2)

	first, err := shell.EventMetadataFrom(entries[0].StorableEvent)
	require.NoError(t, err)
	second, err := shell.EventMetadataFrom(entries[1].StorableEvent)
	require.NoError(t, err)

	assert.Equal(t, correlationID.String(), first.CorrelationID)
	assert.Equal(t, correlationID.String(), first.CausationID)
	assert.Equal(t, correlationID.String(), second.CorrelationID)
	assert.NotEqual(t, first.MessageID, second.MessageID)
}

func Test_Journal_SharesSessionCorrelationIDWithoutContextValue(t *testing.T) {
	// arrange
	journal := shell.NewJournal()

	// act
	require.NoError(t, journal.Record(context.Background(), core.BuildBookLentToUser("book1", "user123", time.Now())))
	require.NoError(t, journal.Record(context.Background(), core.BuildBookLentToUser("book3", "user123", time.Now())))

	// assert
	entries := journal.Entries()
	first, err := shell.EventMetadataFrom(entries[0].StorableEvent)
	require.NoError(t, err)
	second, err := shell.EventMetadataFrom(entries[1].StorableEvent)
	require.NoError(t, err)

	assert.Equal(t, first.CorrelationID, second.CorrelationID)
	_, parseErr := uuid.Parse(first.CorrelationID)
	assert.NoError(t, parseErr)
}

func Test_Journal_RecordsRegistryEvents(t *testing.T) {
	// arrange
	journal := shell.NewJournal()
	registry, err := lending.NewRegistry(lending.DefaultSeed(), lending.WithEventRecorder(journal))
	require.NoError(t, err)

	// act
	require.NoError(t, registry.Borrow(context.Background(), "book1", core.BuildUser("user123")))
	_ = registry.Borrow(context.Background(), "book4", core.BuildUser("user123"))

	// assert
	domainEvents, err := journal.DomainEvents()
	require.NoError(t, err)
	require.Len(t, domainEvents, 5)
	assert.Equal(t, core.BookLentToUserEventType, domainEvents[3].EventType())
	assert.Equal(t, core.BorrowingBookFailedEventType, domainEvents[4].EventType())
	assert.True(t, domainEvents[4].IsErrorEvent())
}
