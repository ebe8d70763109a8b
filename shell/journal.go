package shell

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/lending-registry-go/core"
)

// JournalEntry is a StorableEvent with its position in the Journal, starting at 1.
type JournalEntry struct {
	SequenceNumber uint
	StorableEvent
}

// Journal is an append-only, in-memory list of recorded events. It lives as long as the process.
type Journal struct {
	mu                   sync.Mutex
	entries              []JournalEntry
	sessionCorrelationID uuid.UUID
}

// NewJournal creates an empty Journal.
// Events recorded with a context that carries no correlation ID share one correlation ID per Journal.
func NewJournal() *Journal {
	return &Journal{
		sessionCorrelationID: uuid.New(),
	}
}

// Record implements lending.EventRecorder.
func (j *Journal) Record(ctx context.Context, event core.DomainEvent) error {
	correlationID, ok := CorrelationIDFrom(ctx)
	if !ok {
		correlationID = j.sessionCorrelationID
	}

	storableEvent, err := StorableEventFrom(event, BuildEventMetadata(uuid.New(), correlationID, correlationID))
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, JournalEntry{
		SequenceNumber: uint(len(j.entries) + 1),
		StorableEvent:  storableEvent,
	})

	return nil
}

// Entries returns a copy of all entries in recording order.
func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append([]JournalEntry(nil), j.entries...)
}

// Len returns the number of recorded events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.entries)
}

// DomainEvents maps all entries back to domain events.
func (j *Journal) DomainEvents() (core.DomainEvents, error) {
	entries := j.Entries()

	storableEvents := make(StorableEvents, 0, len(entries))
	for _, entry := range entries {
		storableEvents = append(storableEvents, entry.StorableEvent)
	}

	return DomainEventsFrom(storableEvents)
}
