package interfaces

import (
	"context"

	"roam-backend/internal/application/command"
)

type UserService interface {
	Register(ctx context.Context, cmd *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
