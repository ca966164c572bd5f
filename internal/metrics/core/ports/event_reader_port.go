package ports

import (
	"context"

	eventsDomain "analytics-service/internal/events/core/domain"
)

// EventReaderPort gives the aggregation engine a read-only view of the store.
type EventReaderPort interface {
	All(ctx context.Context) ([]eventsDomain.Event, error)
}
