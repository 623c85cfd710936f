package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is what the session cookie carries. The session id is the
// token's jti; the user is always re-read from the store.
type SessionClaims struct {
	SessionID string
	UserID    int64
	ExpiresAt time.Time
}

type Signer struct {
	key []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{key: []byte(secret)}
}

func (s *Signer) Sign(c SessionClaims) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        c.SessionID,
		Subject:   strconv.FormatInt(c.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *Signer) Verify(tokenStr string) (SessionClaims, error) {
	var rc jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &rc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	if rc.ID == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	uid, err := strconv.ParseInt(rc.Subject, 10, 64)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	return SessionClaims{SessionID: rc.ID, UserID: uid, ExpiresAt: rc.ExpiresAt.Time}, nil
}
