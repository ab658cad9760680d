package repositories

import (
	"context"

	"roam-backend/internal/domain/entities"
)

// RankRepository maintains the global popularity counters.
type RankRepository interface {
	// IncrementOrCreate bumps the counter for placeID by one, creating the
	// rank entry with counter==1 (and the given city/country) if it does
	// not exist yet. Implementations must perform this as a single atomic
	// conditional update: two concurrent first-time increments for the
	// same place must never produce two entries.
	IncrementOrCreate(ctx context.Context, placeID, city, country string) error

	// TopRanked returns up to n entries ordered by counter descending,
	// ties broken by id ascending so results are deterministic.
	TopRanked(ctx context.Context, n int) ([]*entities.RankEntry, error)
}
