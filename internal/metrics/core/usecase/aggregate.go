package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	eventsDomain "analytics-service/internal/events/core/domain"
	"analytics-service/internal/metrics/core/domain"
)

const (
	unknownBucket = "unknown"
	recentWindow  = 7 * 24 * time.Hour
)

var ErrInvalidAmount = errors.New("invalid payment amount")

// Aggregate computes a fresh snapshot over events. A malformed timestamp or a
// non-numeric payment amount fails the whole computation.
func Aggregate(events []eventsDomain.Event, now time.Time) (*domain.Snapshot, error) {
	s := &domain.Snapshot{
		TotalEvents:  len(events),
		EventsByType: map[string]int{},
		Devices:      map[string]int{},
		PopularPages: map[string]int{},
	}

	users := map[string]struct{}{}
	sessions := map[string]struct{}{}
	recentUsers := map[string]struct{}{}
	since := now.Add(-recentWindow)

	for _, e := range events {
		if e.HasUser() {
			users[*e.UserID] = struct{}{}
		}
		if e.HasSession() {
			sessions[*e.SessionID] = struct{}{}
		}

		s.EventsByType[e.EventType]++
		s.Devices[propertyOr(e, "device_type", unknownBucket)]++

		if e.EventType == eventsDomain.TypePageView {
			s.PopularPages[propertyOr(e, "page", unknownBucket)]++
		}

		if e.EventType == eventsDomain.TypePaymentCompleted {
			amount, err := amountOf(e)
			if err != nil {
				return nil, err
			}
			s.Revenue.Total += amount
			s.Revenue.Transactions++
		}

		ts, err := e.Time()
		if err != nil {
			return nil, err
		}
		if !ts.After(since) {
			continue
		}

		s.Last7Days.Events++
		if e.HasUser() {
			recentUsers[*e.UserID] = struct{}{}
		}
		switch e.EventType {
		case eventsDomain.TypePageView:
			s.Last7Days.PageViews++
		case eventsDomain.TypePaymentCompleted:
			s.Last7Days.Conversions++
		}
	}

	s.UniqueUsers = len(users)
	s.UniqueSessions = len(sessions)
	s.Last7Days.UniqueUsers = len(recentUsers)

	if s.Revenue.Transactions > 0 {
		s.Revenue.AverageOrderValue = s.Revenue.Total / float64(s.Revenue.Transactions)
	}

	return s, nil
}

// propertyOr buckets by the property value; fallback only when it is missing or null.
func propertyOr(e eventsDomain.Event, key, fallback string) string {
	v, ok := e.Properties[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// amountOf reads properties.amount; missing or null counts as 0.
func amountOf(e eventsDomain.Event) (float64, error) {
	v, ok := e.Properties["amount"]
	if !ok || v == nil {
		return 0, nil
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: event %s: %v", ErrInvalidAmount, e.ID, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: event %s: unsupported type %T", ErrInvalidAmount, e.ID, v)
	}
}
