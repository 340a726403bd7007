package security_test

import (
	"testing"

	"github.com/matthewhartstonge/argon2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/streamhub-api/shared/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)
	assert.False(t, security.NeedsRehash(hash))

	ok, err := security.VerifyPassword("Secret1!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = security.VerifyPassword("Wrong1!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_EmptyHash(t *testing.T) {
	ok, err := security.VerifyPassword("Secret1!", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_LegacyArgon2(t *testing.T) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte("Legacy1!"))
	require.NoError(t, err)

	ok, err := security.VerifyPassword("Legacy1!", string(encoded))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, security.NeedsRehash(string(encoded)))

	ok, err = security.VerifyPassword("legacy1!", string(encoded))
	require.NoError(t, err)
	assert.False(t, ok)
}
