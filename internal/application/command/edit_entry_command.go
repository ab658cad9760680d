package command

import "roam-backend/internal/application/common"

// EditEntryCommand is a partial update: nil pointers mean "leave the field
// alone", so the wire body decides exactly which fields change.
type EditEntryCommand struct {
	EntryID string   `json:"-"`
	PlaceID *string  `json:"place_id,omitempty"`
	City    *string  `json:"city,omitempty"`
	Country *string  `json:"country,omitempty"`
	USState *string  `json:"us_state,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Date    *string  `json:"date,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type EditEntryCommandResult struct {
	Result *common.EntryResult `json:"result"`
}
