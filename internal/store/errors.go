package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"thermodash/internal/models"
)

var (
	ErrNotFound = models.ErrNotFound
	ErrConflict = models.ErrConflict
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// modernc/sqlite reports constraint failures only as text.
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
