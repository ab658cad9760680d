package entities

import (
	"fmt"
	"time"

	"roam-backend/internal/domain"
)

// Entry is a single travel record. History and wishlist entries share this
// shape and live in separate collections; only history enforces the
// per-user unique place constraint.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
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

func NewEntry(userID, placeID, city, country, usState, notes, date string, lat, lng float64) *Entry {
	now := time.Now().UTC()
	return &Entry{
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
		PlaceID:   placeID,
		City:      city,
		Country:   country,
		USState:   usState,
		Notes:     notes,
		Date:      date,
		Lat:       lat,
		Lng:       lng,
	}
}

func (e *Entry) validate() error {
	if e.UserID == "" {
		return fmt.Errorf("%w: user_id", domain.ErrMissingField)
	}
	if e.PlaceID == "" {
		return fmt.Errorf("%w: place_id", domain.ErrMissingField)
	}
	if e.City == "" {
		return fmt.Errorf("%w: city", domain.ErrMissingField)
	}
	if e.Country == "" {
		return fmt.Errorf("%w: country", domain.ErrMissingField)
	}
	if e.Date == "" {
		return fmt.Errorf("%w: date", domain.ErrMissingField)
	}
	return nil
}

// ValidatedEntry mirrors ValidatedUser: repositories only insert entries
// that went through validation.
type ValidatedEntry struct {
	*Entry
}

func NewValidatedEntry(entry *Entry) (*ValidatedEntry, error) {
	if err := entry.validate(); err != nil {
		return nil, err
	}
	return &ValidatedEntry{Entry: entry}, nil
}

func (ve *ValidatedEntry) GetEntry() *Entry {
	return ve.Entry
}
