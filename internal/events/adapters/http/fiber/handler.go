package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (*domain.Event, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, in usecase.ListEventsInput) (*usecase.ListEventsResult, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
	listUC  ListEventsUseCase
	logger  *log.Logger
}

func NewEventHandler(storeUC StoreEventUseCase, listUC ListEventsUseCase, logger *log.Logger) *EventHandler {
	return &EventHandler{storeUC: storeUC, listUC: listUC, logger: logger}
}

// CreateEvent godoc
// @Summary Track an analytics event
// @Description Stores one event, defaulting its timestamp, and recomputes the metrics
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 200 {object} CreateEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json", "request body must be a JSON event")
	}

	e, err := h.storeUC.Execute(c.UserContext(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent):
			return writeError(c, http.StatusBadRequest, "invalid_event", err.Error())
		default:
			h.logger.WithError(err).WithField("event_type", req.EventType).Error("event.track.failed")
			return writeError(c, http.StatusInternalServerError, "internal_server_error", "Failed to track event")
		}
	}

	h.logger.WithFields(log.Fields{
		"event_type": e.EventType,
		"user_id":    derefOr(e.UserID, ""),
	}).Info("event.tracked")

	return c.Status(http.StatusOK).JSON(CreateEventResponse{
		Success: true,
		Data:    toEventResponse(*e),
		Message: "Event tracked successfully",
	})
}

// BulkCreateEvents godoc
// @Summary Track a batch of analytics events
// @Description Validates every event, stores the batch atomically and recomputes once
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 200 {object} EventListEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json", "request body must be a JSON object with an events list")
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = e.toInput()
	}

	result, err := h.storeUC.BulkCreateEvents(c.UserContext(), usecase.BulkCreateEventsInput{Events: inputs})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrEmptyBatch):
			return writeError(c, http.StatusBadRequest, "invalid_event", err.Error())
		default:
			h.logger.WithError(err).WithField("batch_size", len(inputs)).Error("event.bulk_track.failed")
			return writeError(c, http.StatusInternalServerError, "internal_server_error", "Failed to track events")
		}
	}

	h.logger.WithField("created", result.Created).Info("events.tracked")

	return c.Status(http.StatusOK).JSON(EventListEnvelope{
		Success: true,
		Data:    toEventListResponse(result.Events),
		Message: "Events tracked successfully",
	})
}

// ListEvents godoc
// @Summary List analytics events
// @Description Returns events newest first, optionally filtered by type and user
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum number of events" default(100)
// @Param event_type query string false "Event type"
// @Param user_id query string false "User id"
// @Success 200 {object} EventListEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	limit := usecase.DefaultListLimit
	if limitStr := c.Query("limit", ""); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, http.StatusBadRequest, "invalid_query", "invalid 'limit' parameter")
		}
		limit = n
	}

	in := usecase.ListEventsInput{
		EventType: c.Query("event_type", ""),
		UserID:    c.Query("user_id", ""),
		Limit:     limit,
	}

	res, err := h.listUC.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidLimit):
			return writeError(c, http.StatusBadRequest, "invalid_query", err.Error())
		default:
			h.logger.WithError(err).Error("event.list.failed")
			return writeError(c, http.StatusInternalServerError, "internal_server_error", "Failed to list events")
		}
	}

	return c.Status(http.StatusOK).JSON(EventListEnvelope{
		Success: true,
		Data:    toEventListResponse(res.Events),
	})
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
