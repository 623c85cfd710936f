package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("k1")
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok, err := s.Sign(SessionClaims{SessionID: "sid-1", UserID: 42, ExpiresAt: exp})
	require.NoError(t, err)

	c, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", c.SessionID)
	assert.Equal(t, int64(42), c.UserID)
	assert.True(t, c.ExpiresAt.Equal(exp))
}

func TestSignerRejects(t *testing.T) {
	s := NewSigner("k1")

	tok, err := NewSigner("k2").Sign(SessionClaims{SessionID: "x", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	tok, err = s.Sign(SessionClaims{SessionID: "x", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x", Subject: "1"})
	raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
