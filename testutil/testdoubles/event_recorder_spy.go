package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/lending"
)

// EventRecorderSpy is an EventRecorder that keeps every recorded event in memory.
// With a non-nil failWith it rejects every event with that error instead.
type EventRecorderSpy struct {
	events   core.DomainEvents
	failWith error
	mu       sync.Mutex
}

// NewEventRecorderSpy creates a new EventRecorderSpy.
func NewEventRecorderSpy() *EventRecorderSpy {
	return &EventRecorderSpy{}
}

// NewFailingEventRecorderSpy creates an EventRecorderSpy that fails every Record call with err.
func NewFailingEventRecorderSpy(err error) *EventRecorderSpy {
	return &EventRecorderSpy{failWith: err}
}

// Record implements the EventRecorder interface.
func (s *EventRecorderSpy) Record(_ context.Context, event core.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return s.failWith
	}

	s.events = append(s.events, event)

	return nil
}

// FailWith switches the spy to failing mode, a nil err switches it back.
func (s *EventRecorderSpy) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failWith = err
}

// GetEvents returns a copy of all recorded events.
func (s *EventRecorderSpy) GetEvents() core.DomainEvents {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(core.DomainEvents(nil), s.events...)
}

// LastEvent returns the most recently recorded event, or nil.
func (s *EventRecorderSpy) LastEvent() core.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return nil
	}

	return s.events[len(s.events)-1]
}

// Compile-time check to ensure EventRecorderSpy implements EventRecorder interface.
var _ lending.EventRecorder = (*EventRecorderSpy)(nil)
