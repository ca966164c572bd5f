package domain

import "time"

// Snapshot metric names.
const (
	MetricTotalEvents    = "total_events"
	MetricUniqueUsers    = "unique_users"
	MetricUniqueSessions = "unique_sessions"
	MetricEventsByType   = "events_by_type"
	MetricDevices        = "devices"
	MetricPopularPages   = "popular_pages"
	MetricRevenue        = "revenue"
	MetricLast7Days      = "last_7_days"
)

// MetricNames lists the snapshot metrics in response order.
var MetricNames = []string{
	MetricTotalEvents,
	MetricUniqueUsers,
	MetricUniqueSessions,
	MetricEventsByType,
	MetricDevices,
	MetricPopularPages,
	MetricRevenue,
	MetricLast7Days,
}

// Snapshot is the full metric set derived from the current store content.
type Snapshot struct {
	TotalEvents    int            `json:"total_events"`
	UniqueUsers    int            `json:"unique_users"`
	UniqueSessions int            `json:"unique_sessions"`
	EventsByType   map[string]int `json:"events_by_type"`
	Devices        map[string]int `json:"devices"`
	PopularPages   map[string]int `json:"popular_pages"`
	Revenue        Revenue        `json:"revenue"`
	Last7Days      Window         `json:"last_7_days"`
}

type Revenue struct {
	Total             float64 `json:"total"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// Window holds activity for the rolling 7-day window.
type Window struct {
	Events      int `json:"events"`
	UniqueUsers int `json:"unique_users"`
	PageViews   int `json:"page_views"`
	Conversions int `json:"conversions"`
}

// Value returns the metric stored under name.
func (s *Snapshot) Value(name string) (any, bool) {
	switch name {
	case MetricTotalEvents:
		return s.TotalEvents, true
	case MetricUniqueUsers:
		return s.UniqueUsers, true
	case MetricUniqueSessions:
		return s.UniqueSessions, true
	case MetricEventsByType:
		return s.EventsByType, true
	case MetricDevices:
		return s.Devices, true
	case MetricPopularPages:
		return s.PopularPages, true
	case MetricRevenue:
		return s.Revenue, true
	case MetricLast7Days:
		return s.Last7Days, true
	default:
		return nil, false
	}
}

type Overview struct {
	TotalEvents    int     `json:"total_events"`
	UniqueUsers    int     `json:"unique_users"`
	UniqueSessions int     `json:"unique_sessions"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// Dashboard is a composed view over one snapshot.
type Dashboard struct {
	Overview        Overview       `json:"overview"`
	RecentActivity  Window         `json:"recent_activity"`
	TopEvents       map[string]int `json:"top_events"`
	DeviceBreakdown map[string]int `json:"device_breakdown"`
	PopularPages    map[string]int `json:"popular_pages"`
	RevenueStats    Revenue        `json:"revenue_stats"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
