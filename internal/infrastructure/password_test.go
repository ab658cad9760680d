package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("open sesame")
	require.NoError(t, err)

	assert.NotEqual(t, "open sesame", hashed)
	assert.True(t, hasher.Verify("open sesame", hashed))
	assert.False(t, hasher.Verify("open sesam", hashed))
	assert.False(t, hasher.Verify("", hashed))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same password", first))
	assert.True(t, hasher.Verify("same password", second))
}
