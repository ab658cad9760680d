package repositories

import (
	"context"

	"roam-backend/internal/domain/entities"
)

// UserRepository persists accounts. Find methods return (nil, nil) when no
// document matches; callers decide whether absence is an error.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
