package domain

const (
	MetricUserActivity = "user_activity"
	MetricDailyEvents  = "daily_events"
)

type Period struct {
	Start *string
	End   *string
}

// Report is an ad-hoc grouping of the filtered event set. Message is set
// instead of Counts when the metric has no report implementation.
type Report struct {
	Metric      string
	Filters     map[string]any
	Period      Period
	Counts      map[string]int
	Message     string
	TotalEvents int
}

func (r *Report) Implemented() bool {
	return r.Message == ""
}
