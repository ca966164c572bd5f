package usecase_test

import (
	"errors"
	"testing"
	"time"

	eventsDomain "analytics-service/internal/events/core/domain"
	"analytics-service/internal/metrics/core/usecase"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func ev(eventType string, user, session *string, ts time.Time, props map[string]any) eventsDomain.Event {
	if props == nil {
		props = map[string]any{}
	}
	return eventsDomain.Event{
		ID:         eventType,
		EventType:  eventType,
		UserID:     user,
		SessionID:  session,
		Properties: props,
		Timestamp:  eventsDomain.FormatTimestamp(ts),
	}
}

// ------------------------------------------------------------
// EXAMPLE SCENARIO
// ------------------------------------------------------------

func TestAggregate_PageViewsAndPayment(t *testing.T) {
	events := []eventsDomain.Event{
		ev("page_view", nil, nil, now.Add(-time.Hour), map[string]any{"page": "/home"}),
		ev("page_view", nil, nil, now.Add(-time.Hour), map[string]any{"page": "/home"}),
		ev("payment_completed", nil, nil, now.Add(-time.Hour), map[string]any{"amount": 1000.0}),
	}

	s, err := usecase.Aggregate(events, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TotalEvents != 3 {
		t.Fatalf("expected total_events=3, got %d", s.TotalEvents)
	}
	if len(s.PopularPages) != 1 || s.PopularPages["/home"] != 2 {
		t.Fatalf("expected popular_pages={/home:2}, got %v", s.PopularPages)
	}
	if s.Revenue.Total != 1000 || s.Revenue.Transactions != 1 || s.Revenue.AverageOrderValue != 1000 {
		t.Fatalf("unexpected revenue: %+v", s.Revenue)
	}
}

// ------------------------------------------------------------
// COUNTS & BREAKDOWNS
// ------------------------------------------------------------

func TestAggregate_UniqueCountsAndBreakdowns(t *testing.T) {
	events := []eventsDomain.Event{
		ev("login", strPtr("u1"), strPtr("s1"), now, map[string]any{"device_type": "mobile"}),
		ev("login", strPtr("u1"), strPtr("s2"), now, map[string]any{"device_type": "desktop"}),
		ev("search", strPtr("u2"), strPtr("s2"), now, map[string]any{"device_type": "mobile"}),
		ev("page_view", nil, nil, now, nil),
		ev("page_view", strPtr(""), nil, now, map[string]any{"page": 7.0}),
	}

	s, err := usecase.Aggregate(events, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.UniqueUsers != 2 {
		t.Errorf("expected unique_users=2, got %d", s.UniqueUsers)
	}
	if s.UniqueSessions != 2 {
		t.Errorf("expected unique_sessions=2, got %d", s.UniqueSessions)
	}
	if s.EventsByType["login"] != 2 || s.EventsByType["search"] != 1 || s.EventsByType["page_view"] != 2 {
		t.Errorf("unexpected events_by_type: %v", s.EventsByType)
	}
	if s.Devices["mobile"] != 2 || s.Devices["desktop"] != 1 || s.Devices["unknown"] != 2 {
		t.Errorf("unexpected devices: %v", s.Devices)
	}
	if s.PopularPages["unknown"] != 1 || s.PopularPages["7"] != 1 || len(s.PopularPages) != 2 {
		t.Errorf("unexpected popular_pages: %v", s.PopularPages)
	}

	sum := 0
	for _, n := range s.EventsByType {
		sum += n
	}
	if sum != s.TotalEvents {
		t.Errorf("events_by_type sums to %d, total_events=%d", sum, s.TotalEvents)
	}
	if s.UniqueUsers > s.TotalEvents || s.UniqueSessions > s.TotalEvents {
		t.Errorf("unique counts exceed total")
	}
}

func TestAggregate_NonStringBreakdownValues(t *testing.T) {
	events := []eventsDomain.Event{
		ev("page_view", nil, nil, now, map[string]any{"page": 7.0, "device_type": true}),
		ev("page_view", nil, nil, now, map[string]any{"page": nil, "device_type": nil}),
	}

	s, err := usecase.Aggregate(events, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.PopularPages["7"] != 1 || s.PopularPages["unknown"] != 1 || len(s.PopularPages) != 2 {
		t.Errorf("unexpected popular_pages: %v", s.PopularPages)
	}
	if s.Devices["true"] != 1 || s.Devices["unknown"] != 1 || len(s.Devices) != 2 {
		t.Errorf("unexpected devices: %v", s.Devices)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s, err := usecase.Aggregate(nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalEvents != 0 || s.Revenue.Transactions != 0 || s.Revenue.AverageOrderValue != 0 {
		t.Fatalf("unexpected snapshot: %+v", s)
	}
	if s.EventsByType == nil || s.Devices == nil || s.PopularPages == nil {
		t.Fatalf("breakdowns must be empty maps, not nil")
	}
}

// ------------------------------------------------------------
// REVENUE
// ------------------------------------------------------------

func TestAggregate_Revenue(t *testing.T) {
	events := []eventsDomain.Event{
		ev("payment_completed", nil, nil, now, map[string]any{"amount": 100.0}),
		ev("payment_completed", nil, nil, now, map[string]any{"amount": 50}),
		ev("payment_completed", nil, nil, now, map[string]any{}),
		ev("payment_completed", nil, nil, now, map[string]any{"amount": nil}),
		ev("search", nil, nil, now, map[string]any{"amount": 9999.0}),
	}

	s, err := usecase.Aggregate(events, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Revenue.Total != 150 {
		t.Errorf("expected total=150, got %v", s.Revenue.Total)
	}
	if s.Revenue.Transactions != 4 {
		t.Errorf("expected transactions=4, got %d", s.Revenue.Transactions)
	}
	if s.Revenue.AverageOrderValue != 37.5 {
		t.Errorf("expected average=37.5, got %v", s.Revenue.AverageOrderValue)
	}
}

func TestAggregate_InvalidAmount(t *testing.T) {
	events := []eventsDomain.Event{
		ev("payment_completed", nil, nil, now, map[string]any{"amount": "lots"}),
	}

	_, err := usecase.Aggregate(events, now)
	if !errors.Is(err, usecase.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

// ------------------------------------------------------------
// LAST 7 DAYS
// ------------------------------------------------------------

func TestAggregate_Last7Days(t *testing.T) {
	events := []eventsDomain.Event{
		ev("page_view", strPtr("u1"), nil, now.Add(-time.Hour), nil),
		ev("payment_completed", strPtr("u2"), nil, now.Add(-6*24*time.Hour), map[string]any{"amount": 10.0}),
		ev("page_view", strPtr("u1"), nil, now.Add(-2*24*time.Hour), nil),
		// exactly on the boundary: excluded
		ev("page_view", strPtr("u3"), nil, now.Add(-7*24*time.Hour), nil),
		ev("login", strPtr("u4"), nil, now.Add(-30*24*time.Hour), nil),
	}

	s, err := usecase.Aggregate(events, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := s.Last7Days
	if w.Events != 3 || w.UniqueUsers != 2 || w.PageViews != 2 || w.Conversions != 1 {
		t.Fatalf("unexpected window: %+v", w)
	}
}

func TestAggregate_MalformedTimestamp(t *testing.T) {
	events := []eventsDomain.Event{
		{ID: "x", EventType: "login", Properties: map[string]any{}, Timestamp: "last tuesday"},
	}

	_, err := usecase.Aggregate(events, now)
	if !errors.Is(err, eventsDomain.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}
