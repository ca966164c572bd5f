package ports

import (
	"context"

	"analytics-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// Append stores one event at the end of the store.
	Append(ctx context.Context, e domain.Event) error
	// AppendBatch stores all events or none of them.
	AppendBatch(ctx context.Context, events []domain.Event) error
	// All returns every stored event in insertion order. The result is a copy.
	All(ctx context.Context) ([]domain.Event, error)
	Count(ctx context.Context) (int, error)
}

// MetricsRecomputer is triggered after every successful ingestion.
type MetricsRecomputer interface {
	Recompute(ctx context.Context) error
}
