package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Testforever-git/VMS-RentalService/internal/domain"
)

func TestTokenPrefix_TruncatesFullToken(t *testing.T) {
	token, err := domain.GenerateAccessToken()
	require.NoError(t, err)

	prefix := tokenPrefix(token)

	assert.Equal(t, token.String()[:8]+"...", prefix)
	assert.NotContains(t, prefix, token.String())
}

func TestTokenPrefix_ShortTokenUnchanged(t *testing.T) {
	assert.Equal(t, "ab12", tokenPrefix(domain.AccessToken("ab12")))
	assert.Equal(t, "", tokenPrefix(domain.AccessToken("")))
}

func TestTokenPrefix_NeverExposesWholeToken(t *testing.T) {
	token := domain.AccessToken(strings.Repeat("f", 64))

	assert.Len(t, tokenPrefix(token), 8+len("..."))
}
