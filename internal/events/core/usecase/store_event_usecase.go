package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent    = errors.New("invalid event")
	ErrEmptyBatch      = errors.New("events list is empty")
	ErrRecomputeFailed = errors.New("metrics recompute failed")
)

type StoreEventUseCase struct {
	repo      ports.EventRepositoryPort
	recompute ports.MetricsRecomputer
	now       func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort, recompute ports.MetricsRecomputer) *StoreEventUseCase {
	return &StoreEventUseCase{
		repo:      repo,
		recompute: recompute,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to default missing timestamps.
func (uc *StoreEventUseCase) WithClock(now func() time.Time) *StoreEventUseCase {
	uc.now = now
	return uc
}

type StoreEventInput struct {
	EventType  string
	UserID     *string
	SessionID  *string
	Properties map[string]any
	Timestamp  string
}

// Execute stores one event and recomputes the metrics. When the recompute
// fails the event stays stored and the error wraps ErrRecomputeFailed.
func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (*domain.Event, error) {
	if err := uc.validateInput(in); err != nil {
		return nil, err
	}

	e := uc.buildEvent(in)

	if err := uc.repo.Append(ctx, e); err != nil {
		return nil, err
	}

	if err := uc.triggerRecompute(ctx); err != nil {
		return &e, err
	}

	return &e, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Events  []domain.Event
	Created int
}

// BulkCreateEvents validates every item before storing any of them, stores the
// batch atomically and recomputes once.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if len(in.Events) == 0 {
		return res, ErrEmptyBatch
	}

	for i, ev := range in.Events {
		if err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
	}

	events := make([]domain.Event, len(in.Events))
	for i, ev := range in.Events {
		events[i] = uc.buildEvent(ev)
	}

	if err := uc.repo.AppendBatch(ctx, events); err != nil {
		return res, err
	}

	res.Events = events
	res.Created = len(events)

	if err := uc.triggerRecompute(ctx); err != nil {
		return res, err
	}

	return res, nil
}

func (uc *StoreEventUseCase) buildEvent(in StoreEventInput) domain.Event {
	ts := in.Timestamp
	if ts == "" {
		ts = domain.FormatTimestamp(uc.now())
	}

	props := in.Properties
	if props == nil {
		props = map[string]any{}
	}

	return domain.Event{
		ID:         uuid.New().String(),
		EventType:  in.EventType,
		UserID:     in.UserID,
		SessionID:  in.SessionID,
		Properties: props,
		Timestamp:  ts,
	}
}

func (uc *StoreEventUseCase) triggerRecompute(ctx context.Context) error {
	if uc.recompute == nil {
		return nil
	}
	if err := uc.recompute.Recompute(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRecomputeFailed, err)
	}
	return nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	if in.EventType == "" {
		return fmt.Errorf("%w: event_type is required", ErrInvalidEvent)
	}
	return nil
}
