// Package messaging holds event publishing implementations that do not
// depend on an external broker.
package messaging

import (
	"context"
	"sync"

	"pressroom-backend/domain/events"
)

// NoopPublisher discards events. Used when event publishing is disabled.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops all events
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish discards the events
func (p *NoopPublisher) Publish(ctx context.Context, domainEvents []events.DomainEvent) error {
	return nil
}

// RecordingPublisher collects published events in memory. Used in tests
// and in development to inspect what would have gone out on the bus.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

// NewRecordingPublisher creates an in-memory recording publisher
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// Publish appends the events to the in-memory record
func (p *RecordingPublisher) Publish(ctx context.Context, domainEvents []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, domainEvents...)
	return nil
}

// Events returns a copy of everything published so far
func (p *RecordingPublisher) Events() []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]events.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}
