package domain

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken()
	require.NoError(t, err)

	assert.Len(t, token.String(), 64)
	assert.False(t, token.IsZero())

	_, err = hex.DecodeString(token.String())
	assert.NoError(t, err)
}

func TestGenerateAccessToken_Unique(t *testing.T) {
	seen := make(map[AccessToken]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateAccessToken()
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
