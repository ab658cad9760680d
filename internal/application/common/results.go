// Package common holds the response shapes shared by commands and queries.
// Credentials never appear here.
package common

import "time"

type UserResult struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Counters  *CountersResult `json:"counters,omitempty"`
}

type CountersResult struct {
	Cities     int `json:"cities"`
	States     int `json:"states"`
	Countries  int `json:"countries"`
	Continents int `json:"continents"`
}

type EntryResult struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	USState   string    `json:"us_state,omitempty"`
	Notes     string    `json:"notes"`
	Date      string    `json:"date"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
}

type RankResult struct {
	PlaceID string `json:"place_id"`
	City    string `json:"city"`
	Country string `json:"country"`
	Counter int64  `json:"counter"`
}
