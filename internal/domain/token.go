package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AccessToken is the bearer capability protecting a booking: possession of
// the token is the only authorization check on the public retrieval surface.
// It is generated once at booking creation and never re-derived; it is not a
// primary key.
type AccessToken string

// accessTokenBytes of entropy per token; hex-encoded this fills the 64-char
// token column exactly.
const accessTokenBytes = 32

// GenerateAccessToken returns a new cryptographically random, URL-safe token.
func GenerateAccessToken() (AccessToken, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return AccessToken(hex.EncodeToString(buf)), nil
}

// String returns the token as a plain string.
func (t AccessToken) String() string {
	return string(t)
}

// IsZero reports whether the token is empty.
func (t AccessToken) IsZero() bool {
	return t == ""
}
