package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"analytics-service/internal/metrics/core/domain"
)

// EventCounter reports how many events are stored.
type EventCounter interface {
	Count(ctx context.Context) (int, error)
}

type StatusHandler struct {
	events EventCounter
	logger *log.Logger
	now    func() time.Time
}

func NewStatusHandler(events EventCounter, logger *log.Logger) *StatusHandler {
	return &StatusHandler{events: events, logger: logger, now: time.Now}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Events    int       `json:"events"`
}

type testData struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Events    int       `json:"events"`
	Metrics   int       `json:"metrics"`
}

type testResponse struct {
	Success bool     `json:"success"`
	Data    testData `json:"data"`
}

// Health godoc
// @Summary Liveness check
// @Tags Status
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	n, err := h.events.Count(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("health.count.failed")
		return fiber.ErrInternalServerError
	}

	return c.Status(http.StatusOK).JSON(healthResponse{
		Status:    "OK",
		Timestamp: h.now(),
		Service:   ServiceName,
		Version:   Version,
		Events:    n,
	})
}

// Test godoc
// @Summary Smoke test
// @Tags Status
// @Produce json
// @Success 200 {object} testResponse
// @Router /api/test [get]
func (h *StatusHandler) Test(c *fiber.Ctx) error {
	n, err := h.events.Count(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("test.count.failed")
		return fiber.ErrInternalServerError
	}

	return c.Status(http.StatusOK).JSON(testResponse{
		Success: true,
		Data: testData{
			Message:   "Analytics service is working!",
			Timestamp: h.now(),
			Events:    n,
			Metrics:   len(domain.MetricNames),
		},
	})
}
