package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewmate/backend/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, security.CheckPassword(hash, "secret1"))
	assert.False(t, security.CheckPassword(hash, "secret2"))
	assert.False(t, security.CheckPassword("", "secret1"))
}

func TestNewToken(t *testing.T) {
	a, err := security.NewToken()
	require.NoError(t, err)
	b, err := security.NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
	assert.NotEqual(t, a, b)
}
