package entities

import (
	"fmt"
	"time"

	"roam-backend/internal/domain"
)

// User is a registered account. The ID is assigned by the record store on
// insert and is opaque to the rest of the code.
type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
}

func NewUser(username, password, name string) *User {
	now := time.Now().UTC()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Password:  password,
		Name:      name,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username", domain.ErrMissingField)
	}
	if u.Password == "" {
		return fmt.Errorf("%w: password", domain.ErrMissingField)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	return nil
}

// ValidatedUser is the only user value repositories accept for writes, so an
// unvalidated User cannot reach the store.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}
