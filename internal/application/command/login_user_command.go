package command

import "roam-backend/internal/application/common"

type LoginUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
