package usecase_test

import (
	"context"
	"errors"
	"testing"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/usecase"
)

func seededRepo() *fakeEventRepo {
	return &fakeEventRepo{Appended: []domain.Event{
		{ID: "1", EventType: "page_view", UserID: strPtr("u1"), Timestamp: "2024-05-01T10:00:00Z"},
		{ID: "2", EventType: "search", UserID: strPtr("u2"), Timestamp: "2024-05-03T10:00:00Z"},
		{ID: "3", EventType: "page_view", Timestamp: "2024-05-02T10:00:00Z"},
		{ID: "4", EventType: "page_view", UserID: strPtr("u1"), Timestamp: "2024-05-04T10:00:00+02:00"},
		{ID: "5", EventType: "login", UserID: strPtr("u1"), Timestamp: "2024-05-02T10:00:00Z"},
	}}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListEvents_SortedNewestFirst(t *testing.T) {
	uc := usecase.NewListEventsUseCase(seededRepo())

	res, err := uc.Execute(context.Background(), usecase.ListEventsInput{Limit: usecase.DefaultListLimit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 and 5 share a timestamp; the stable sort keeps insertion order.
	want := []string{"4", "2", "3", "5", "1"}
	if got := ids(res.Events); !equalIDs(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	if res.Total != 5 {
		t.Fatalf("expected total 5, got %d", res.Total)
	}
}

func TestListEvents_FiltersAreANDed(t *testing.T) {
	uc := usecase.NewListEventsUseCase(seededRepo())

	res, err := uc.Execute(context.Background(), usecase.ListEventsInput{
		EventType: "page_view",
		UserID:    "u1",
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"4", "1"}
	if got := ids(res.Events); !equalIDs(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListEvents_UnknownTypeIsEmpty(t *testing.T) {
	uc := usecase.NewListEventsUseCase(seededRepo())

	res, err := uc.Execute(context.Background(), usecase.ListEventsInput{EventType: "registration", Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 || len(res.Events) != 0 {
		t.Fatalf("expected no events, got %v", ids(res.Events))
	}
}

func TestListEvents_Limit(t *testing.T) {
	uc := usecase.NewListEventsUseCase(seededRepo())

	res, err := uc.Execute(context.Background(), usecase.ListEventsInput{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"4", "2"}; !equalIDs(ids(res.Events), want) {
		t.Fatalf("expected %v, got %v", want, ids(res.Events))
	}
	if res.Total != 2 {
		t.Fatalf("expected total 2, got %d", res.Total)
	}

	res, err = uc.Execute(context.Background(), usecase.ListEventsInput{Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("expected empty result for limit 0, got %d", res.Total)
	}
}

func TestListEvents_NegativeLimit(t *testing.T) {
	uc := usecase.NewListEventsUseCase(seededRepo())

	_, err := uc.Execute(context.Background(), usecase.ListEventsInput{Limit: -1})
	if !errors.Is(err, usecase.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestListEvents_UnparseableTimestampsSortLast(t *testing.T) {
	repo := &fakeEventRepo{Appended: []domain.Event{
		{ID: "bad1", EventType: "login", Timestamp: "garbage"},
		{ID: "ok", EventType: "login", Timestamp: "2024-05-01T10:00:00Z"},
		{ID: "bad2", EventType: "login", Timestamp: ""},
	}}
	uc := usecase.NewListEventsUseCase(repo)

	res, err := uc.Execute(context.Background(), usecase.ListEventsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"ok", "bad1", "bad2"}; !equalIDs(ids(res.Events), want) {
		t.Fatalf("expected %v, got %v", want, ids(res.Events))
	}
}
