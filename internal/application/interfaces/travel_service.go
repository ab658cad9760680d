package interfaces

import (
	"context"

	"roam-backend/internal/application/command"
	"roam-backend/internal/application/query"
)

// TravelService manages one entries collection. The history instance
// enforces the unique-place rule and feeds the rank aggregator; the
// wishlist instance does neither.
type TravelService interface {
	Add(ctx context.Context, cmd *command.AddEntryCommand) (*command.AddEntryCommandResult, error)
	List(ctx context.Context, userID string) (*query.EntryQueryListResult, error)
	Edit(ctx context.Context, cmd *command.EditEntryCommand) (*command.EditEntryCommandResult, error)
	Remove(ctx context.Context, entryID string) (*command.RemoveEntryCommandResult, error)
}
