package services

import (
	"context"
	"fmt"

	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
	"roam-backend/internal/geo"
)

// StatsService recomputes a user's CounterSummary from their history. The
// counts are distinct-value counts, so repeated visits to one country do
// not inflate them; continents are derived from countries.
type StatsService struct {
	entries  repositories.EntryRepository
	counters repositories.CounterRepository
}

func NewStatsService(entries repositories.EntryRepository, counters repositories.CounterRepository) *StatsService {
	return &StatsService{entries: entries, counters: counters}
}

// Refresh recomputes and saves the summary for userID. It reads the
// current history rather than adjusting counts incrementally, so it
// converges after adds, edits and removals alike.
func (s *StatsService) Refresh(ctx context.Context, userID string) error {
	cities, err := s.entries.DistinctByUser(ctx, userID, repositories.EntryFieldCity)
	if err != nil {
		return fmt.Errorf("distinct cities: %w", err)
	}
	states, err := s.entries.DistinctByUser(ctx, userID, repositories.EntryFieldUSState)
	if err != nil {
		return fmt.Errorf("distinct states: %w", err)
	}
	countries, err := s.entries.DistinctByUser(ctx, userID, repositories.EntryFieldCountry)
	if err != nil {
		return fmt.Errorf("distinct countries: %w", err)
	}

	continents := map[string]struct{}{}
	for _, country := range countries {
		if continent := geo.ContinentOf(country); continent != "" {
			continents[continent] = struct{}{}
		}
	}

	summary := entities.NewCounterSummary(userID)
	summary.History = entities.TravelCounts{
		Cities:     len(cities),
		States:     len(states),
		Countries:  len(countries),
		Continents: len(continents),
	}
	return s.counters.Save(ctx, summary)
}
