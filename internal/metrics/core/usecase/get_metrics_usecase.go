package usecase

import (
	"context"
	"errors"
	"time"

	"analytics-service/internal/metrics/core/domain"
	"analytics-service/internal/metrics/core/ports"
)

var ErrMetricNotFound = errors.New("metric not found")

type GetMetricsUseCase struct {
	reader ports.EventReaderPort
	now    func() time.Time
}

func NewGetMetricsUseCase(reader ports.EventReaderPort) *GetMetricsUseCase {
	return &GetMetricsUseCase{reader: reader, now: time.Now}
}

// WithClock replaces the clock that anchors the 7-day window.
func (uc *GetMetricsUseCase) WithClock(now func() time.Time) *GetMetricsUseCase {
	uc.now = now
	return uc
}

// Snapshot recomputes every metric from the current store content.
func (uc *GetMetricsUseCase) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	events, err := uc.reader.All(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(events, uc.now())
}

// Recompute runs a full aggregation and discards the result.
func (uc *GetMetricsUseCase) Recompute(ctx context.Context) error {
	_, err := uc.Snapshot(ctx)
	return err
}

// Metric returns a single named value from a fresh snapshot.
func (uc *GetMetricsUseCase) Metric(ctx context.Context, name string) (any, error) {
	s, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	v, ok := s.Value(name)
	if !ok {
		return nil, ErrMetricNotFound
	}
	return v, nil
}

func (uc *GetMetricsUseCase) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	s, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Overview: domain.Overview{
			TotalEvents:    s.TotalEvents,
			UniqueUsers:    s.UniqueUsers,
			UniqueSessions: s.UniqueSessions,
			TotalRevenue:   s.Revenue.Total,
		},
		RecentActivity:  s.Last7Days,
		TopEvents:       s.EventsByType,
		DeviceBreakdown: s.Devices,
		PopularPages:    s.PopularPages,
		RevenueStats:    s.Revenue,
		UpdatedAt:       uc.now(),
	}, nil
}
