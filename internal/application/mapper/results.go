package mapper

import (
	"roam-backend/internal/application/common"
	"roam-backend/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		Username:  user.Username,
		Name:      user.Name,
	}
}

func NewUserResultWithCounters(user *entities.User, summary *entities.CounterSummary) *common.UserResult {
	result := NewUserResultFromEntity(user)
	result.Counters = &common.CountersResult{
		Cities:     summary.History.Cities,
		States:     summary.History.States,
		Countries:  summary.History.Countries,
		Continents: summary.History.Continents,
	}
	return result
}

func NewEntryResultFromEntity(entry *entities.Entry) *common.EntryResult {
	return &common.EntryResult{
		ID:        entry.ID,
		CreatedAt: entry.CreatedAt,
		UserID:    entry.UserID,
		PlaceID:   entry.PlaceID,
		City:      entry.City,
		Country:   entry.Country,
		USState:   entry.USState,
		Notes:     entry.Notes,
		Date:      entry.Date,
		Lat:       entry.Lat,
		Lng:       entry.Lng,
	}
}

func NewEntryResultsFromEntities(entries []*entities.Entry) []*common.EntryResult {
	results := make([]*common.EntryResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, NewEntryResultFromEntity(entry))
	}
	return results
}

func NewRankResultFromEntity(rank *entities.RankEntry) *common.RankResult {
	return &common.RankResult{
		PlaceID: rank.PlaceID,
		City:    rank.City,
		Country: rank.Country,
		Counter: rank.Counter,
	}
}

func NewRankResultsFromEntities(ranks []*entities.RankEntry) []*common.RankResult {
	results := make([]*common.RankResult, 0, len(ranks))
	for _, rank := range ranks {
		results = append(results, NewRankResultFromEntity(rank))
	}
	return results
}
