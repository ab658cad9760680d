package interfaces

import (
	"context"

	"roam-backend/internal/application/query"
)

type RankService interface {
	// Increment records one more visit for the place, creating its rank
	// entry on first sight.
	Increment(ctx context.Context, placeID, city, country string) error

	// TopRanked returns the n most visited places, most popular first.
	// n <= 0 selects the default board size.
	TopRanked(ctx context.Context, n int) (*query.RankQueryListResult, error)
}
