package services

import (
	"context"
	"fmt"
	"log/slog"

	"roam-backend/internal/application/command"
	"roam-backend/internal/application/interfaces"
	"roam-backend/internal/application/mapper"
	"roam-backend/internal/application/query"
	"roam-backend/internal/domain"
	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
	"roam-backend/internal/messaging"
)

// TravelService is the ledger over one entries collection. ranks and stats
// are nil for the wishlist instance; only history feeds the leaderboard and
// the per-user statistics.
type TravelService struct {
	users       repositories.UserRepository
	entries     repositories.EntryRepository
	ranks       interfaces.RankService
	stats       *StatsService
	publisher   *messaging.Publisher
	logger      *slog.Logger
	addSubject  string
	uniquePlace bool
}

func NewHistoryService(
	users repositories.UserRepository,
	entries repositories.EntryRepository,
	ranks interfaces.RankService,
	stats *StatsService,
	publisher *messaging.Publisher,
	logger *slog.Logger,
) interfaces.TravelService {
	return &TravelService{
		users:       users,
		entries:     entries,
		ranks:       ranks,
		stats:       stats,
		publisher:   publisher,
		logger:      logger,
		addSubject:  messaging.SubjectHistoryAdded,
		uniquePlace: true,
	}
}

func NewWishlistService(
	users repositories.UserRepository,
	entries repositories.EntryRepository,
	publisher *messaging.Publisher,
	logger *slog.Logger,
) interfaces.TravelService {
	return &TravelService{
		users:      users,
		entries:    entries,
		publisher:  publisher,
		logger:     logger,
		addSubject: messaging.SubjectWishlistAdded,
	}
}

// Add validates the entry, checks the owner exists and (for history) that
// the place was not logged before, inserts it, and then synchronously bumps
// the rank counter. A rank or stats failure after the insert is logged and
// the insert stands: each operation is per-document atomic only.
func (s *TravelService) Add(ctx context.Context, cmd *command.AddEntryCommand) (*command.AddEntryCommandResult, error) {
	entry, err := entities.NewValidatedEntry(entities.NewEntry(
		cmd.UserID, cmd.PlaceID, cmd.City, cmd.Country,
		cmd.USState, cmd.Notes, cmd.Date, cmd.Lat, cmd.Lng,
	))
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", cmd.UserID, domain.ErrNotFound)
	}

	if s.uniquePlace {
		existing, err := s.entries.FindByUserAndPlace(ctx, cmd.UserID, cmd.PlaceID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("place %q for user %q: %w", cmd.PlaceID, cmd.UserID, domain.ErrAlreadyExists)
		}
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	if s.ranks != nil {
		if err := s.ranks.Increment(ctx, created.PlaceID, created.City, created.Country); err != nil {
			s.logger.Error("rank increment failed after insert", "place_id", created.PlaceID, "error", err)
		}
	}
	if s.stats != nil {
		if err := s.stats.Refresh(ctx, created.UserID); err != nil {
			s.logger.Error("stats refresh failed after insert", "user_id", created.UserID, "error", err)
		}
	}

	result := mapper.NewEntryResultFromEntity(created)
	if err := s.publisher.Publish(s.addSubject, result); err != nil {
		s.logger.Warn("failed to publish entry event", "subject", s.addSubject, "error", err)
	}

	return &command.AddEntryCommandResult{Result: result}, nil
}

func (s *TravelService) List(ctx context.Context, userID string) (*query.EntryQueryListResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id", domain.ErrMissingField)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", userID, domain.ErrNotFound)
	}

	entries, err := s.entries.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &query.EntryQueryListResult{Result: mapper.NewEntryResultsFromEntities(entries)}, nil
}

// Edit merges only the fields the caller supplied into the stored entry and
// writes the whole document back. Rank counters are all-time and are left
// untouched even when place_id changes.
func (s *TravelService) Edit(ctx context.Context, cmd *command.EditEntryCommand) (*command.EditEntryCommandResult, error) {
	if cmd.EntryID == "" {
		return nil, fmt.Errorf("%w: entry id", domain.ErrMissingField)
	}

	entry, err := s.entries.FindByID(ctx, cmd.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %q: %w", cmd.EntryID, domain.ErrNotFound)
	}

	if cmd.PlaceID != nil {
		entry.PlaceID = *cmd.PlaceID
	}
	if cmd.City != nil {
		entry.City = *cmd.City
	}
	if cmd.Country != nil {
		entry.Country = *cmd.Country
	}
	if cmd.USState != nil {
		entry.USState = *cmd.USState
	}
	if cmd.Notes != nil {
		entry.Notes = *cmd.Notes
	}
	if cmd.Date != nil {
		entry.Date = *cmd.Date
	}
	if cmd.Lat != nil {
		entry.Lat = *cmd.Lat
	}
	if cmd.Lng != nil {
		entry.Lng = *cmd.Lng
	}

	if err := s.entries.Replace(ctx, entry); err != nil {
		return nil, err
	}

	if s.stats != nil {
		if err := s.stats.Refresh(ctx, entry.UserID); err != nil {
			s.logger.Error("stats refresh failed after edit", "user_id", entry.UserID, "error", err)
		}
	}

	return &command.EditEntryCommandResult{Result: mapper.NewEntryResultFromEntity(entry)}, nil
}

// Remove deletes the entry and returns it as it was stored. The rank
// counter for its place is not decremented.
func (s *TravelService) Remove(ctx context.Context, entryID string) (*command.RemoveEntryCommandResult, error) {
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry id", domain.ErrMissingField)
	}

	entry, err := s.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entry %q: %w", entryID, domain.ErrNotFound)
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return nil, err
	}

	if s.stats != nil {
		if err := s.stats.Refresh(ctx, entry.UserID); err != nil {
			s.logger.Error("stats refresh failed after remove", "user_id", entry.UserID, "error", err)
		}
	}

	return &command.RemoveEntryCommandResult{Result: mapper.NewEntryResultFromEntity(entry)}, nil
}
