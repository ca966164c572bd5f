package fiber

import (
	"context"
	"errors"
	"net/http"

	"analytics-service/internal/reports/core/domain"
	"analytics-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type GenerateReportUseCase interface {
	Execute(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error)
}

type ReportHandler struct {
	uc     GenerateReportUseCase
	logger *log.Logger
}

func NewReportHandler(uc GenerateReportUseCase, logger *log.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

// GenerateReport godoc
// @Summary Generate a custom report
// @Description Filters events by date range, event_type and user_id, then groups them by metric_name (user_activity, daily_events)
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "Report query"
// @Success 200 {object} GenerateReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/reports/generate [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Error:   "invalid_json",
			Message: "request body must be a JSON report query",
		})
	}

	report, err := h.uc.Execute(c.UserContext(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidReportQuery):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Success: false,
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			h.logger.WithError(err).WithFields(log.Fields{
				"metric_name": req.MetricName,
				"start_date":  derefOr(req.StartDate),
				"end_date":    derefOr(req.EndDate),
			}).Error("report.generate.failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Success: false,
				Error:   "internal_server_error",
				Message: "Failed to generate report",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(GenerateReportResponse{
		Success: true,
		Data:    toReportResponse(report),
	})
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
