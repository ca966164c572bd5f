package memory

import (
	"context"
	"sync"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/ports"
)

// EventRepository is an append-only, process-local event store.
// Writers take the write lock; readers copy under the read lock, so a reader
// never observes a partially appended batch.
type EventRepository struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

func (r *EventRepository) Append(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := e.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, stored)
	return nil
}

func (r *EventRepository) AppendBatch(ctx context.Context, events []domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]domain.Event, len(events))
	for i, e := range events {
		stored[i] = e.Clone()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, stored...)
	return nil
}

func (r *EventRepository) All(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, len(r.events))
	for i, e := range r.events {
		out[i] = e.Clone()
	}
	return out, nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events), nil
}
