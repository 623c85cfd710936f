package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/bytedance/sonic"
)

// JSONB holds an arbitrary JSON document in a text/jsonb column.
type JSONB []byte

// NewJSONB encodes v; a value that cannot be encoded becomes an empty object.
func NewJSONB(v any) JSONB {
	b, err := sonic.Marshal(v)
	if err != nil {
		return JSONB("{}")
	}
	return JSONB(b)
}

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB("{}")
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append(JSONB(nil), v...)
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		b, err := sonic.Marshal(v)
		if err != nil {
			return fmt.Errorf("jsonb scan: %w", err)
		}
		*j = JSONB(b)
		return nil
	}
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return []byte(j), nil
}
