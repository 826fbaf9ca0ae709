package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Verify(hash, "password123"))
	assert.False(t, hasher.Verify(hash, "wrong"))
}

func TestBcryptHasher_InvalidStoredHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Verify("not-a-bcrypt-hash", "password123"))
	assert.False(t, hasher.Verify("", "password123"))
}
