package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	eventsDomain "analytics-service/internal/events/core/domain"
	"analytics-service/internal/reports/core/domain"
	"analytics-service/internal/reports/core/ports"
)

var (
	ErrInvalidReportQuery = errors.New("invalid report query")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

type GenerateReportInput struct {
	MetricName string
	StartDate  string // "" = unbounded
	EndDate    string // "" = unbounded
	Filters    map[string]any
}

type GenerateReportUseCase struct {
	reader ports.EventReaderPort
}

func NewGenerateReportUseCase(reader ports.EventReaderPort) *GenerateReportUseCase {
	return &GenerateReportUseCase{reader: reader}
}

// Execute filters by date range first, then by the recognized filter keys,
// and groups the remaining events by MetricName.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, in GenerateReportInput) (*domain.Report, error) {
	if in.MetricName == "" {
		return nil, fmt.Errorf("%w: metric_name is required", ErrInvalidReportQuery)
	}

	events, err := uc.reader.All(ctx)
	if err != nil {
		return nil, err
	}

	if in.StartDate != "" {
		start, err := parseBound("start_date", in.StartDate)
		if err != nil {
			return nil, err
		}
		events, err = filterByTime(events, func(ts time.Time) bool { return !ts.Before(start) })
		if err != nil {
			return nil, err
		}
	}

	if in.EndDate != "" {
		end, err := parseBound("end_date", in.EndDate)
		if err != nil {
			return nil, err
		}
		events, err = filterByTime(events, func(ts time.Time) bool { return !ts.After(end) })
		if err != nil {
			return nil, err
		}
	}

	for key, value := range in.Filters {
		switch key {
		case "event_type":
			events = filter(events, func(e eventsDomain.Event) bool {
				s, ok := value.(string)
				return ok && e.EventType == s
			})
		case "user_id":
			events = filter(events, func(e eventsDomain.Event) bool {
				if value == nil {
					return e.UserID == nil
				}
				s, ok := value.(string)
				return ok && e.UserID != nil && *e.UserID == s
			})
		}
	}

	filters := in.Filters
	if filters == nil {
		filters = map[string]any{}
	}

	report := &domain.Report{
		Metric:      in.MetricName,
		Filters:     filters,
		Period:      domain.Period{Start: optional(in.StartDate), End: optional(in.EndDate)},
		TotalEvents: len(events),
	}

	switch in.MetricName {
	case domain.MetricUserActivity:
		report.Counts = userActivity(events)
	case domain.MetricDailyEvents:
		report.Counts, err = dailyEvents(events)
		if err != nil {
			return nil, err
		}
	default:
		report.Message = fmt.Sprintf("Report for %s not implemented", in.MetricName)
	}

	return report, nil
}

func userActivity(events []eventsDomain.Event) map[string]int {
	counts := map[string]int{}
	for _, e := range events {
		if e.HasUser() {
			counts[*e.UserID]++
		}
	}
	return counts
}

// dailyEvents buckets by the calendar date in the timestamp's own offset.
func dailyEvents(events []eventsDomain.Event) (map[string]int, error) {
	counts := map[string]int{}
	for _, e := range events {
		ts, err := e.Time()
		if err != nil {
			return nil, err
		}
		counts[ts.Format(time.DateOnly)]++
	}
	return counts, nil
}

func parseBound(name, value string) (time.Time, error) {
	t, err := eventsDomain.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidDateRange, name, err)
	}
	return t, nil
}

func filterByTime(events []eventsDomain.Event, keep func(time.Time) bool) ([]eventsDomain.Event, error) {
	out := events[:0:0]
	for _, e := range events {
		ts, err := e.Time()
		if err != nil {
			return nil, err
		}
		if keep(ts) {
			out = append(out, e)
		}
	}
	return out, nil
}

func filter(events []eventsDomain.Event, keep func(eventsDomain.Event) bool) []eventsDomain.Event {
	out := events[:0:0]
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
