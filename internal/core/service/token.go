package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// tokenRawSize is the entropy of a session token before encoding. 32 bytes
// keeps tokens unguessable for any realistic session volume.
const tokenRawSize = 32

// newSessionToken returns an opaque token: base64url, no padding.
func newSessionToken() (string, error) {
	raw := make([]byte, tokenRawSize)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func newUserID() string {
	return uuid.NewString()
}
