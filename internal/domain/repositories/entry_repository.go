package repositories

import (
	"context"

	"roam-backend/internal/domain/entities"
)

// Fields usable with EntryRepository.DistinctByUser.
const (
	EntryFieldCity    = "city"
	EntryFieldCountry = "country"
	EntryFieldUSState = "us_state"
)

// EntryRepository persists travel entries for one collection (history or
// wishlist). Find methods return (nil, nil) when no document matches.
type EntryRepository interface {
	Create(ctx context.Context, entry *entities.ValidatedEntry) (*entities.Entry, error)
	FindByID(ctx context.Context, id string) (*entities.Entry, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Entry, error)
	FindByUserAndPlace(ctx context.Context, userID, placeID string) (*entities.Entry, error)
	Replace(ctx context.Context, entry *entities.Entry) error
	Delete(ctx context.Context, id string) error

	// DistinctByUser returns the distinct non-empty values of one entry
	// field across a user's entries.
	DistinctByUser(ctx context.Context, userID, field string) ([]string, error)
}
