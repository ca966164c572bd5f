package fiber

import "analytics-service/internal/metrics/core/domain"

type SnapshotResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Snapshot `json:"data"`
}

type MetricValue struct {
	Metric string `json:"metric" example:"total_events"`
	Value  any    `json:"value"`
}

type MetricResponse struct {
	Success bool        `json:"success"`
	Data    MetricValue `json:"data"`
}

type DashboardResponse struct {
	Success bool              `json:"success"`
	Data    *domain.Dashboard `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"metric_not_found"`
	Message string `json:"message" example:"Metric not found"`
}
