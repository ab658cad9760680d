package services

import (
	"context"
	"log/slog"
	"time"

	"roam-backend/internal/application/interfaces"
	"roam-backend/internal/application/mapper"
	"roam-backend/internal/application/query"
	"roam-backend/internal/domain/repositories"
	"roam-backend/internal/infrastructure"
)

// DefaultTopRanks is the board size served when the caller does not ask
// for one.
const DefaultTopRanks = 5

const topRanksCacheTTL = 30 * time.Second

// RankService keeps the global popularity board. Counters record all-time
// history adds: edits and removals never decrement them.
type RankService struct {
	ranks  repositories.RankRepository
	cache  *infrastructure.RedisService
	logger *slog.Logger
}

func NewRankService(ranks repositories.RankRepository, cache *infrastructure.RedisService, logger *slog.Logger) interfaces.RankService {
	return &RankService{ranks: ranks, cache: cache, logger: logger}
}

func (s *RankService) Increment(ctx context.Context, placeID, city, country string) error {
	if err := s.ranks.IncrementOrCreate(ctx, placeID, city, country); err != nil {
		return err
	}
	s.cache.InvalidateTopRanks(ctx)
	return nil
}

func (s *RankService) TopRanked(ctx context.Context, n int) (*query.RankQueryListResult, error) {
	if n <= 0 {
		n = DefaultTopRanks
	}

	if ranks, ok := s.cache.GetTopRanks(ctx, n); ok {
		return &query.RankQueryListResult{Result: mapper.NewRankResultsFromEntities(ranks)}, nil
	}

	ranks, err := s.ranks.TopRanked(ctx, n)
	if err != nil {
		return nil, err
	}
	s.cache.SetTopRanks(ctx, n, ranks, topRanksCacheTTL)

	return &query.RankQueryListResult{Result: mapper.NewRankResultsFromEntities(ranks)}, nil
}
