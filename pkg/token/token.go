package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// TokenBytes is the amount of randomness in a session token. Encoded tokens are twice as long.
const TokenBytes = 32

// ErrMalformedToken is returned when a presented token cannot have been issued by this package.
var ErrMalformedToken = errors.New("malformed session token")

// Generator issues opaque session tokens.
type Generator interface {
	NewToken() (string, error)
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() Generator {
	return randomGenerator{}
}

type randomGenerator struct{}

// NewToken returns 32 random bytes as lowercase hex.
func (randomGenerator) NewToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Validate checks the shape of a presented token so that garbage cookies never reach the database.
func Validate(tok string) error {
	if len(tok) != TokenBytes*2 {
		return ErrMalformedToken
	}
	if _, err := hex.DecodeString(tok); err != nil {
		return ErrMalformedToken
	}
	return nil
}
