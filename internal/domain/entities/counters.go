package entities

// TravelCounts holds distinct-geography counts derived from a user's
// history entries.
type TravelCounts struct {
	Cities     int `json:"cities"`
	States     int `json:"states"`
	Countries  int `json:"countries"`
	Continents int `json:"continents"`
}

// CounterSummary is the per-user statistics rollup. It is created zeroed at
// registration and recomputed whenever the user's history changes.
type CounterSummary struct {
	ID      string       `json:"id"`
	UserID  string       `json:"user_id"`
	History TravelCounts `json:"history"`
}

func NewCounterSummary(userID string) *CounterSummary {
	return &CounterSummary{UserID: userID}
}
