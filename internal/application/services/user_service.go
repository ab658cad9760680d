package services

import (
	"context"
	"fmt"
	"log/slog"

	"roam-backend/internal/application/command"
	"roam-backend/internal/application/interfaces"
	"roam-backend/internal/application/mapper"
	"roam-backend/internal/domain"
	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
	"roam-backend/internal/infrastructure"
	"roam-backend/internal/messaging"
)

type UserService struct {
	users     repositories.UserRepository
	counters  repositories.CounterRepository
	hasher    infrastructure.PasswordHasher
	publisher *messaging.Publisher
	logger    *slog.Logger
}

func NewUserService(
	users repositories.UserRepository,
	counters repositories.CounterRepository,
	hasher infrastructure.PasswordHasher,
	publisher *messaging.Publisher,
	logger *slog.Logger,
) interfaces.UserService {
	return &UserService{
		users:     users,
		counters:  counters,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// Register creates the account plus its zeroed counter summary and returns
// the public fields merged with the counters. The duplicate-username check
// here is the fast path; the unique index in the store decides races.
func (s *UserService) Register(ctx context.Context, cmd *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	user, err := entities.NewValidatedUser(entities.NewUser(cmd.Username, cmd.Password, cmd.Name))
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q: %w", cmd.Username, domain.ErrAlreadyExists)
	}

	hashed, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	summary, err := s.counters.Create(ctx, entities.NewCounterSummary(created.ID))
	if err != nil {
		// The account exists; surface the summary failure rather than
		// pretending registration half-succeeded silently.
		return nil, fmt.Errorf("create counters: %w", err)
	}

	if err := s.publisher.Publish(messaging.SubjectUserRegistered, mapper.NewUserResultFromEntity(created)); err != nil {
		s.logger.Warn("failed to publish registration event", "user_id", created.ID, "error", err)
	}

	return &command.CreateUserCommandResult{
		Result: mapper.NewUserResultWithCounters(created, summary),
	}, nil
}

// Login re-validates credentials on every call; there is no session state.
func (s *UserService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("%w: username", domain.ErrMissingField)
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: password", domain.ErrMissingField)
	}

	user, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("username %q: %w", cmd.Username, domain.ErrNotFound)
	}

	if !s.hasher.Verify(cmd.Password, user.Password) {
		return nil, domain.ErrBadCredential
	}

	return &command.LoginUserCommandResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
