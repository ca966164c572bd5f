package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/ports"
)

const DefaultListLimit = 100

var ErrInvalidLimit = errors.New("invalid limit")

type ListEventsInput struct {
	EventType string // "" = any
	UserID    string // "" = any
	Limit     int
}

type ListEventsResult struct {
	Events []domain.Event
	Total  int
}

type ListEventsUseCase struct {
	repo ports.EventRepositoryPort
}

func NewListEventsUseCase(repo ports.EventRepositoryPort) *ListEventsUseCase {
	return &ListEventsUseCase{repo: repo}
}

// Execute filters the store, sorts newest first and truncates to Limit.
// Events with an unparseable timestamp sort after all others.
func (uc *ListEventsUseCase) Execute(ctx context.Context, in ListEventsInput) (*ListEventsResult, error) {
	if in.Limit < 0 {
		return nil, ErrInvalidLimit
	}

	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		event domain.Event
		ts    time.Time
		ok    bool
	}

	matched := make([]keyed, 0, len(all))
	for _, e := range all {
		if in.EventType != "" && e.EventType != in.EventType {
			continue
		}
		if in.UserID != "" && (e.UserID == nil || *e.UserID != in.UserID) {
			continue
		}
		ts, err := e.Time()
		matched = append(matched, keyed{event: e, ts: ts, ok: err == nil})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ts.After(b.ts)
	})

	if len(matched) > in.Limit {
		matched = matched[:in.Limit]
	}

	events := make([]domain.Event, len(matched))
	for i, k := range matched {
		events[i] = k.event
	}

	return &ListEventsResult{Events: events, Total: len(events)}, nil
}
