package fiber

import (
	"analytics-service/internal/events/core/domain"
	"analytics-service/internal/events/core/usecase"
)

// CreateEventRequest represents event tracking payload
// @Description Analytics event DTO
type CreateEventRequest struct {
	EventType  string         `json:"event_type" example:"page_view"`
	UserID     *string        `json:"user_id" example:"user_1"`
	SessionID  *string        `json:"session_id" example:"session_1"`
	Properties map[string]any `json:"properties"`
	Timestamp  *string        `json:"timestamp" example:"2024-05-01T10:00:00Z"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type EventResponse struct {
	ID         string         `json:"id"`
	EventType  string         `json:"event_type"`
	UserID     *string        `json:"user_id"`
	SessionID  *string        `json:"session_id"`
	Properties map[string]any `json:"properties"`
	Timestamp  string         `json:"timestamp"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

type CreateEventResponse struct {
	Success bool          `json:"success"`
	Data    EventResponse `json:"data"`
	Message string        `json:"message,omitempty"`
}

type EventListEnvelope struct {
	Success bool              `json:"success"`
	Data    EventListResponse `json:"data"`
	Message string            `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}

func toEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		EventType:  e.EventType,
		UserID:     e.UserID,
		SessionID:  e.SessionID,
		Properties: e.Properties,
		Timestamp:  e.Timestamp,
	}
}

func toEventListResponse(events []domain.Event) EventListResponse {
	out := EventListResponse{
		Events: make([]EventResponse, 0, len(events)),
		Total:  len(events),
	}
	for _, e := range events {
		out.Events = append(out.Events, toEventResponse(e))
	}
	return out
}

func (r CreateEventRequest) toInput() usecase.StoreEventInput {
	in := usecase.StoreEventInput{
		EventType:  r.EventType,
		UserID:     r.UserID,
		SessionID:  r.SessionID,
		Properties: r.Properties,
	}
	if r.Timestamp != nil {
		in.Timestamp = *r.Timestamp
	}
	return in
}
