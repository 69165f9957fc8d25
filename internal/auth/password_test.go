package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret-1")
	require.NoError(t, err)
	assert.NotEqual(t, "super-secret-1", hash)

	assert.True(t, CheckPasswordHash("super-secret-1", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}
