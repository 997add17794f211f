package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "Chris", "USER", 5)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := ParseAccessToken("s3cret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "Chris", claims.Username)
	assert.Equal(t, "USER", claims.Role)

	_, err = ParseAccessToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredAccessToken(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "Chris", "USER", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken("s3cret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("7777777", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "7777777"))
	assert.False(t, VerifyPassword(hash, "777777"))
	assert.False(t, VerifyPassword("", ""))
}

func TestHashPasswordLimits(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	hash, err := HashPassword("", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, ""))
	assert.False(t, VerifyPassword(hash, "x"))
}

func TestVerifyPasswordRejectsLongerThanStored(t *testing.T) {
	pw := strings.Repeat("a", 72)
	hash, err := HashPassword(pw, bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, pw))
	assert.False(t, VerifyPassword(hash, pw+"-wrong"))
}
