package command

import "roam-backend/internal/application/common"

type AddEntryCommand struct {
	UserID  string  `json:"user_id"`
	PlaceID string  `json:"place_id"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	USState string  `json:"us_state,omitempty"`
	Notes   string  `json:"notes"`
	Date    string  `json:"date"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type AddEntryCommandResult struct {
	Result *common.EntryResult `json:"result"`
}
