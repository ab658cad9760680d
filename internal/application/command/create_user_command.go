package command

import "roam-backend/internal/application/common"

type CreateUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
