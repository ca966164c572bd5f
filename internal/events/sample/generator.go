// Package sample generates synthetic demo events for a fresh store.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"analytics-service/internal/events/core/domain"

	"github.com/google/uuid"
)

var (
	eventTypes = []string{
		domain.TypePageView,
		domain.TypeListingView,
		domain.TypeSearch,
		domain.TypeRegistration,
		domain.TypeLogin,
		domain.TypeListingCreated,
		domain.TypePaymentCompleted,
	}
	pages      = []string{"/home", "/listings", "/profile", "/search"}
	referrers  = []string{"direct", "google.com", "facebook.com"}
	devices    = []string{"desktop", "mobile", "tablet"}
	categories = []string{"commercial", "private", "helicopter"}
	queries    = []string{"boeing", "airbus", "gulfstream", "cessna"}
)

const maxAgeDays = 30

// Generate returns n events spread over the 30 days before now.
func Generate(n int, now time.Time, rng *rand.Rand) []domain.Event {
	events := make([]domain.Event, 0, n)
	for range n {
		events = append(events, generateOne(now, rng))
	}
	return events
}

func generateOne(now time.Time, rng *rand.Rand) domain.Event {
	eventType := pick(rng, eventTypes)
	userID := fmt.Sprintf("user_%d", rng.IntN(50)+1)
	sessionID := fmt.Sprintf("session_%d", rng.IntN(100)+1)
	ts := now.AddDate(0, 0, -rng.IntN(maxAgeDays+1))

	props := map[string]any{
		"page":        pick(rng, pages),
		"user_agent":  "Mozilla/5.0...",
		"referrer":    pick(rng, referrers),
		"device_type": pick(rng, devices),
	}

	switch eventType {
	case domain.TypeListingView:
		props["listing_id"] = fmt.Sprintf("aircraft_%d", rng.IntN(20)+1)
		props["category"] = pick(rng, categories)
	case domain.TypeSearch:
		props["query"] = pick(rng, queries)
		props["results_count"] = float64(rng.IntN(51))
	case domain.TypePaymentCompleted:
		props["amount"] = float64(500 + rng.IntN(49501))
		props["currency"] = "USD"
	}

	return domain.Event{
		ID:         uuid.New().String(),
		EventType:  eventType,
		UserID:     &userID,
		SessionID:  &sessionID,
		Properties: props,
		Timestamp:  domain.FormatTimestamp(ts),
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
