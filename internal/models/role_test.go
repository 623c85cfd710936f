package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleBijection(t *testing.T) {
	for _, tc := range []struct {
		label string
		id    int64
	}{
		{"admin", 1},
		{"user", 2},
	} {
		r, err := ParseRole(tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.id, r.ID())

		back, err := RoleFromID(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.label, back.String())
	}
}

func TestRoleUnknownValues(t *testing.T) {
	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = RoleFromID(3)
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = Role(0).Value()
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = Role(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRoleScan(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan(int64(1)))
	assert.Equal(t, RoleAdmin, r)

	require.NoError(t, r.Scan("user"))
	assert.Equal(t, RoleUser, r)

	require.NoError(t, r.Scan([]byte("1")))
	assert.Equal(t, RoleAdmin, r)

	assert.ErrorIs(t, r.Scan(nil), ErrUnknownRole)
	assert.ErrorIs(t, r.Scan(int64(9)), ErrUnknownRole)
	assert.ErrorIs(t, r.Scan(1.5), ErrUnknownRole)
}

func TestRoleTextRoundTrip(t *testing.T) {
	b, err := RoleAdmin.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "admin", string(b))

	var r Role
	require.NoError(t, r.UnmarshalText([]byte(" User ")))
	assert.Equal(t, RoleUser, r)
}

func TestReadingPlaceLabel(t *testing.T) {
	place := "sauna"
	assert.Equal(t, "sauna", Reading{Place: &place, ThermometerID: "28-01"}.PlaceLabel())
	assert.Equal(t, "28-01", Reading{ThermometerID: "28-01"}.PlaceLabel())
}
