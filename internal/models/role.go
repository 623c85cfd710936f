package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Role is the authorization level of a user. Its storage form is the
// integer role_id; its display form is the label.
type Role int64

const (
	RoleAdmin Role = 1
	RoleUser  Role = 2
)

// ErrUnknownRole is wrapped by every conversion that meets a value outside
// the enumeration.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps a label to its Role.
func ParseRole(label string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, label)
}

// RoleFromID maps a stored role_id to its Role.
func RoleFromID(id int64) (Role, error) {
	switch Role(id) {
	case RoleAdmin, RoleUser:
		return Role(id), nil
	}
	return 0, fmt.Errorf("%w: id %d", ErrUnknownRole, id)
}

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

func (r Role) ID() int64 { return int64(r) }

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	}
	return "role(" + strconv.FormatInt(int64(r), 10) + ")"
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownRole, int64(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	v, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value stores the role as its integer id.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownRole, int64(r))
	}
	return int64(r), nil
}

// Scan accepts either the integer id or the label, since joined queries
// return roles.role while plain ones return users.role_id.
func (r *Role) Scan(src any) error {
	var (
		v   Role
		err error
	)
	switch s := src.(type) {
	case int64:
		v, err = RoleFromID(s)
	case int32:
		v, err = RoleFromID(int64(s))
	case int:
		v, err = RoleFromID(int64(s))
	case string:
		v, err = scanRoleText(s)
	case []byte:
		v, err = scanRoleText(string(s))
	case nil:
		err = fmt.Errorf("%w: NULL", ErrUnknownRole)
	default:
		err = fmt.Errorf("%w: unsupported type %T", ErrUnknownRole, src)
	}
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func scanRoleText(s string) (Role, error) {
	if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return RoleFromID(id)
	}
	return ParseRole(s)
}
