package session

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator produces opaque session tokens, unique per call.
type TokenGenerator interface {
	NewToken() (string, error)
}

// UUIDTokens issues "token-<random uuid>" values.
type UUIDTokens struct{}

func (UUIDTokens) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return "token-" + id.String(), nil
}
