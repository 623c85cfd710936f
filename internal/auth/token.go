package auth

import (
	"crypto/rand"
	"encoding/base64"
)

const accessKeyLength = 100

// NewToken returns n random bytes encoded as unpadded base64url.
func NewToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewAccessKey returns a 100 character key drawn from 100 random bytes.
func NewAccessKey() (string, error) {
	b := make([]byte, accessKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b)[:accessKeyLength], nil
}
