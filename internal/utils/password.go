package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLen is the number of bytes bcrypt reads from its input.
const maxPasswordLen = 72

// ErrPasswordTooLong is returned by HashPassword for passwords bcrypt would
// truncate.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// HashPassword returns the bcrypt hash of an account password.  A cost
// outside bcrypt's range falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if len(plain) > maxPasswordLen {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain is exactly the password behind
// hash.  An empty hash never matches, and neither does anything longer
// than a storable password, since bcrypt would only compare its prefix.
func VerifyPassword(hash, plain string) bool {
	if hash == "" || len(plain) > maxPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
