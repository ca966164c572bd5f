package ports

import (
	"context"

	eventsDomain "analytics-service/internal/events/core/domain"
)

type EventReaderPort interface {
	All(ctx context.Context) ([]eventsDomain.Event, error)
}
