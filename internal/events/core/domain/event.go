package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp is returned when a stored or supplied timestamp is not
// an ISO-8601 date-time.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

const (
	TypePageView         = "page_view"
	TypeListingView      = "listing_view"
	TypeSearch           = "search"
	TypeRegistration     = "registration"
	TypeLogin            = "login"
	TypeListingCreated   = "listing_created"
	TypePaymentCompleted = "payment_completed"
)

// Event is one ingested analytics record. Timestamp keeps the string the
// client sent; use Time to parse it.
type Event struct {
	ID         string
	EventType  string
	UserID     *string
	SessionID  *string
	Properties map[string]any
	Timestamp  string
}

// Time parses the event timestamp.
func (e Event) Time() (time.Time, error) {
	return ParseTimestamp(e.Timestamp)
}

// HasUser reports whether the event carries a non-empty user id.
func (e Event) HasUser() bool {
	return e.UserID != nil && *e.UserID != ""
}

// HasSession reports whether the event carries a non-empty session id.
func (e Event) HasSession() bool {
	return e.SessionID != nil && *e.SessionID != ""
}

// Property returns properties[key] when it is a string.
func (e Event) Property(key string) (string, bool) {
	v, ok := e.Properties[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a copy sharing no mutable state with e.
func (e Event) Clone() Event {
	out := e
	out.UserID = cloneString(e.UserID)
	out.SessionID = cloneString(e.SessionID)
	if e.Properties != nil {
		out.Properties = cloneValue(e.Properties).(map[string]any)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	default:
		return v
	}
}

// offset-less layouts are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseTimestamp parses an ISO-8601 date-time or date.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// FormatTimestamp renders t the way defaulted timestamps are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
