package entities

// RankEntry is the global popularity counter for one place. At most one
// entry exists per place id; Counter counts every history entry ever added
// for that place, across all users.
type RankEntry struct {
	ID      string `json:"id"`
	PlaceID string `json:"place_id"`
	City    string `json:"city"`
	Country string `json:"country"`
	Counter int64  `json:"counter"`
}
