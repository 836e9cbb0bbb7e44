package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSRFToken(t *testing.T) {
	a, err := NewCSRFToken()
	require.NoError(t, err)
	b, err := NewCSRFToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestCheckCSRF(t *testing.T) {
	assert.True(t, CheckCSRF("abc", "abc"))
	assert.False(t, CheckCSRF("abc", "abd"))
	assert.False(t, CheckCSRF("", ""))
	assert.False(t, CheckCSRF("abc", ""))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Yacht123")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Yacht123"))
	assert.False(t, CheckPassword(hash, "yacht123"))
	assert.False(t, CheckPassword([]byte("garbage"), "Yacht123"))
}
