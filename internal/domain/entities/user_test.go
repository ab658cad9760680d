package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/domain"
)

func TestNewValidatedUser(t *testing.T) {
	user := NewUser("ada", "hashed", "Ada Lovelace")

	validated, err := NewValidatedUser(user)
	require.NoError(t, err)
	assert.Same(t, user, validated.GetUser())
	assert.False(t, user.CreatedAt.IsZero())
	assert.Empty(t, user.ID)
}

func TestUserValidationRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		user *User
	}{
		{"no username", NewUser("", "pw", "Ada")},
		{"no password", NewUser("ada", "", "Ada")},
		{"no name", NewUser("ada", "pw", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(tt.user)
			assert.ErrorIs(t, err, domain.ErrMissingField)
		})
	}
}

func TestUserJSONOmitsPassword(t *testing.T) {
	data, err := json.Marshal(NewUser("ada", "super-secret", "Ada"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super-secret")
	assert.NotContains(t, string(data), "password")
}
