package lending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/features/borrowbook"
	"github.com/AntonStoeckl/lending-registry-go/features/checkavailability"
	"github.com/AntonStoeckl/lending-registry-go/features/checkinvariant"
	"github.com/AntonStoeckl/lending-registry-go/features/returnbook"
)

const (
	operationBorrow            = "borrow"
	operationReturn            = "return"
	operationCheckAvailability = "check_availability"
	operationCheckInvariant    = "check_invariant"
	operationListBooks         = "list_books"
)

// Registry tracks which books are available and who borrowed the others.
// It is safe for concurrent use; every operation runs under one mutex.
type Registry struct {
	mu       sync.Mutex
	status   map[core.BookIDString]core.BookStatus
	borrower map[core.BookIDString]core.UserIDString

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
	eventRecorder    EventRecorder
	clock            func() time.Time
}

// NewRegistry creates a Registry holding the books of seed.
// One BookRegistered event per seed entry is handed to the EventRecorder, if one is configured.
func NewRegistry(seed Seed, options ...Option) (*Registry, error) {
	r := &Registry{
		status:   make(map[core.BookIDString]core.BookStatus, len(seed)),
		borrower: make(map[core.BookIDString]core.UserIDString),
		clock:    time.Now,
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}

	ctx := context.Background()

	for _, entry := range seed {
		r.status[entry.BookID] = entry.Status
		if entry.Status == core.Borrowed {
			r.borrower[entry.BookID] = entry.BorrowedBy
		}

		registered := core.BuildBookRegistered(entry.BookID, entry.Status, entry.BorrowedBy, r.clock())
		if err := r.record(ctx, registered); err != nil {
			return nil, err
		}
	}

	r.logInfo(ctx, logMsgRegistryCreated, logAttrBookCount, len(r.status))
	r.recordBorrowedBooks(ctx)

	return r, nil
}

// Borrow lends the book to the user.
//
// It fails with core.ErrBookNotFound if the book is unknown and core.ErrBookAlreadyBorrowed
// if anybody holds the book. The user ID is opaque; an empty one is accepted. A failed call leaves the registry unchanged.
func (r *Registry) Borrow(ctx context.Context, bookID core.BookIDString, user core.User) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	observer, ctx := r.startOperation(ctx, operationBorrow, SpanNameBorrow, map[string]string{
		LabelBookID: bookID,
		LabelUserID: user.ID,
	})
	defer func() { observer.finish(err) }()

	command := borrowbook.BuildCommand(bookID, user, r.clock())
	result := borrowbook.Decide(r.bookState(bookID), command)

	if decisionErr := result.HasError(); decisionErr != nil {
		return r.rejected(ctx, result.Event, decisionErr)
	}

	r.logInfo(ctx, fmt.Sprintf(logMsgBorrowing, user.ID, bookID), logAttrBookID, bookID, logAttrUserID, user.ID)

	if err := r.apply(result.Event); err != nil {
		return err
	}

	if r.status[bookID] != core.Borrowed || r.borrower[bookID] != user.ID {
		return fmt.Errorf("%s: book %s is not borrowed by user %s: %w",
			result.Event.EventType(), bookID, user.ID, core.ErrPostconditionFailed)
	}

	r.recordBorrowedBooks(ctx)

	return r.record(ctx, result.Event)
}

// ReturnBook takes the book back from the user.
//
// It fails with core.ErrBookNotFound if the book is unknown, core.ErrBookNotBorrowed if it is on the shelf,
// and core.ErrWrongBorrower if somebody else borrowed it. A failed call leaves the registry unchanged.
func (r *Registry) ReturnBook(ctx context.Context, bookID core.BookIDString, user core.User) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	observer, ctx := r.startOperation(ctx, operationReturn, SpanNameReturn, map[string]string{
		LabelBookID: bookID,
		LabelUserID: user.ID,
	})
	defer func() { observer.finish(err) }()

	command := returnbook.BuildCommand(bookID, user, r.clock())
	result := returnbook.Decide(r.bookState(bookID), command)

	if decisionErr := result.HasError(); decisionErr != nil {
		return r.rejected(ctx, result.Event, decisionErr)
	}

	r.logInfo(ctx, fmt.Sprintf(logMsgReturning, user.ID, bookID), logAttrBookID, bookID, logAttrUserID, user.ID)

	if err := r.apply(result.Event); err != nil {
		return err
	}

	if _, stillBorrowed := r.borrower[bookID]; r.status[bookID] != core.Available || stillBorrowed {
		return fmt.Errorf("%s: book %s is not available: %w",
			result.Event.EventType(), bookID, core.ErrPostconditionFailed)
	}

	r.recordBorrowedBooks(ctx)

	return r.record(ctx, result.Event)
}

// CheckAvailability reports whether the book is available or who borrowed it.
// It fails with core.ErrBookNotFound if the book is unknown.
func (r *Registry) CheckAvailability(ctx context.Context, bookID core.BookIDString) (report checkavailability.AvailabilityReport, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	observer, _ := r.startOperation(ctx, operationCheckAvailability, SpanNameCheckAvailability, map[string]string{
		LabelBookID: bookID,
	})
	defer func() { observer.finish(err) }()

	return checkavailability.Project(r.bookState(bookID), checkavailability.BuildQuery(bookID))
}

// CheckInvariant verifies that every status is valid and that exactly the borrowed books have a borrower.
// Violations are returned joined, each wrapping core.ErrInvariantViolation.
func (r *Registry) CheckInvariant(ctx context.Context) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	observer, ctx := r.startOperation(ctx, operationCheckInvariant, SpanNameCheckInvariant, nil)
	defer func() { observer.finish(err) }()

	state := checkinvariant.State{Status: r.status, Borrower: r.borrower}
	if err := checkinvariant.Verify(state, checkinvariant.BuildQuery()); err != nil {
		return err
	}

	r.logInfo(ctx, checkinvariant.SatisfiedMessage)

	return nil
}

// Books returns the availability of every book, ordered by book ID.
func (r *Registry) Books(ctx context.Context) checkavailability.AvailabilityReports {
	r.mu.Lock()
	defer r.mu.Unlock()

	observer, _ := r.startOperation(ctx, operationListBooks, SpanNameListBooks, nil)
	defer observer.finish(nil)

	states := make([]core.BookState, 0, len(r.status))
	for bookID := range r.status {
		states = append(states, r.bookState(bookID))
	}

	return checkavailability.ProjectAll(states)
}

// bookState builds what the Decide and Project functions get to see. Must be called with the lock held.
func (r *Registry) bookState(bookID core.BookIDString) core.BookState {
	status, exists := r.status[bookID]
	if !exists {
		return core.UnknownBook(bookID)
	}

	return core.BookState{
		BookID:     bookID,
		Exists:     true,
		Status:     status,
		BorrowedBy: r.borrower[bookID],
	}
}

// apply mutates the maps according to a success event. Must be called with the lock held.
func (r *Registry) apply(event core.DomainEvent) error {
	switch e := event.(type) {
	case core.BookLentToUser:
		r.status[e.BookID] = core.Borrowed
		r.borrower[e.BookID] = e.UserID
	case core.BookReturnedByUser:
		r.status[e.BookID] = core.Available
		delete(r.borrower, e.BookID)
	default:
		return fmt.Errorf("%s: %w", event.EventType(), core.ErrPostconditionFailed)
	}

	return nil
}

// rejected records the failure event of a decision and returns its error.
func (r *Registry) rejected(ctx context.Context, event core.DomainEvent, decisionErr error) error {
	if err := r.record(ctx, event); err != nil {
		return errors.Join(decisionErr, err)
	}

	return decisionErr
}

// record hands the event to the EventRecorder, if one is configured.
func (r *Registry) record(ctx context.Context, event core.DomainEvent) error {
	if r.eventRecorder == nil {
		return nil
	}

	if err := r.eventRecorder.Record(ctx, event); err != nil {
		return fmt.Errorf("%s: %w: %w", event.EventType(), ErrRecordingEventFailed, err)
	}

	return nil
}
