package security

import (
	"crypto/rand"
	"encoding/hex"
)

// NewToken returns 32 random bytes hex-encoded (64 characters). Used for
// both email-verification and password-reset tokens.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
