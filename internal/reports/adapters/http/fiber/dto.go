package fiber

import (
	"analytics-service/internal/reports/core/domain"
	"analytics-service/internal/reports/core/usecase"
)

// GenerateReportRequest represents an ad-hoc report query
// @Description Report query DTO
type GenerateReportRequest struct {
	MetricName string         `json:"metric_name" example:"user_activity"`
	StartDate  *string        `json:"start_date" example:"2024-05-01T00:00:00Z"`
	EndDate    *string        `json:"end_date" example:"2024-05-31T23:59:59Z"`
	Filters    map[string]any `json:"filters"`
}

type PeriodResponse struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type ReportResponse struct {
	Metric      string         `json:"metric"`
	Filters     map[string]any `json:"filters"`
	Period      PeriodResponse `json:"period"`
	Results     map[string]any `json:"results"`
	TotalEvents int            `json:"total_events"`
}

type GenerateReportResponse struct {
	Success bool           `json:"success"`
	Data    ReportResponse `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"metric_name is required"`
}

func (r GenerateReportRequest) toInput() usecase.GenerateReportInput {
	in := usecase.GenerateReportInput{
		MetricName: r.MetricName,
		Filters:    r.Filters,
	}
	if r.StartDate != nil {
		in.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		in.EndDate = *r.EndDate
	}
	return in
}

func toReportResponse(r *domain.Report) ReportResponse {
	results := make(map[string]any, len(r.Counts))
	if r.Implemented() {
		for k, v := range r.Counts {
			results[k] = v
		}
	} else {
		results["message"] = r.Message
	}

	return ReportResponse{
		Metric:      r.Metric,
		Filters:     r.Filters,
		Period:      PeriodResponse{Start: r.Period.Start, End: r.Period.End},
		Results:     results,
		TotalEvents: r.TotalEvents,
	}
}
