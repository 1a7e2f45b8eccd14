package usage

import "time"

// ActionAnalyze tags usage events written for completed analysis requests.
const ActionAnalyze = "analyze"

// Event is one append-only usage record. Events are only ever counted over
// a time window, never read back individually.
type Event struct {
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats is a user's consumption snapshot for the usage endpoint.
type Stats struct {
	TodayUsage   int `json:"todayUsage"`
	MonthlyUsage int `json:"monthlyUsage"`
}
