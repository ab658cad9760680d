package repositories

import (
	"context"

	"roam-backend/internal/domain/entities"
)

// CounterRepository persists per-user travel statistics, one summary per
// user id.
type CounterRepository interface {
	Create(ctx context.Context, summary *entities.CounterSummary) (*entities.CounterSummary, error)
	FindByUser(ctx context.Context, userID string) (*entities.CounterSummary, error)

	// Save writes the summary for summary.UserID, creating it if missing.
	Save(ctx context.Context, summary *entities.CounterSummary) error
}
