package fiber

import (
	"context"
	"errors"
	"net/http"

	"analytics-service/internal/metrics/core/domain"
	"analytics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type GetMetricsUseCase interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
	Metric(ctx context.Context, name string) (any, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type MetricsHandler struct {
	uc     GetMetricsUseCase
	logger *log.Logger
}

func NewMetricsHandler(uc GetMetricsUseCase, logger *log.Logger) *MetricsHandler {
	return &MetricsHandler{uc: uc, logger: logger}
}

// GetMetrics godoc
// @Summary Full metrics snapshot
// @Description Recomputes every metric from the stored events
// @Tags Metrics
// @Produce json
// @Success 200 {object} SnapshotResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	s, err := h.uc.Snapshot(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "metrics.snapshot.failed")
	}

	return c.Status(http.StatusOK).JSON(SnapshotResponse{Success: true, Data: s})
}

// GetMetric godoc
// @Summary One named metric
// @Tags Metrics
// @Produce json
// @Param name path string true "Metric name" Enums(total_events, unique_users, unique_sessions, events_by_type, devices, popular_pages, revenue, last_7_days)
// @Success 200 {object} MetricResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics/{name} [get]
func (h *MetricsHandler) GetMetric(c *fiber.Ctx) error {
	name := c.Params("name")

	v, err := h.uc.Metric(c.UserContext(), name)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMetricNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Success: false,
				Error:   "metric_not_found",
				Message: "Metric not found",
			})
		default:
			return h.internalError(c, err, "metrics.get.failed")
		}
	}

	return c.Status(http.StatusOK).JSON(MetricResponse{
		Success: true,
		Data:    MetricValue{Metric: name, Value: v},
	})
}

// GetDashboard godoc
// @Summary Dashboard view
// @Description Overview, recent activity and breakdowns composed from one snapshot
// @Tags Metrics
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *MetricsHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return h.internalError(c, err, "metrics.dashboard.failed")
	}

	return c.Status(http.StatusOK).JSON(DashboardResponse{Success: true, Data: d})
}

func (h *MetricsHandler) internalError(c *fiber.Ctx, err error, msg string) error {
	h.logger.WithError(err).Error(msg)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Success: false,
		Error:   "internal_server_error",
		Message: "Failed to compute metrics",
	})
}
