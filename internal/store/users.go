package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"thermodash/internal/auth"
	"thermodash/internal/models"
)

// AddUser inserts a user and returns its id. digest must already be a
// password hash.
func (s *Store) AddUser(ctx context.Context, email, phone string, role models.Role, digest string) (int64, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("add user: %w", models.ErrUnknownRole)
	}
	db, cancel := s.conn(ctx)
	defer cancel()
	u := models.User{
		Email:        strings.TrimSpace(email),
		Phone:        strings.TrimSpace(phone),
		Role:         role,
		PasswordHash: digest,
	}
	if err := db.Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user %s: %w", u.Email, ErrConflict)
		}
		return 0, fmt.Errorf("add user: %w", err)
	}
	return u.UserID, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.findUser(ctx, "user_id = ?", id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, "email = ?", strings.TrimSpace(email))
}

func (s *Store) findUser(ctx context.Context, query string, arg any) (*models.User, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	var u models.User
	err := db.Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// ListUsers returns every user whose role is known, without digests.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	out := []models.User{}
	err := db.Table("users AS u").
		Select("u.user_id, u.email, u.phone, u.role_id").
		Joins("JOIN roles AS r ON r.role_id = u.role_id").
		Order("u.user_id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// ValidateUser checks a login attempt. An unknown email is ErrNotFound, a
// wrong password is (nil, nil) and a match returns the user without its
// digest.
func (s *Store) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, nil
	}
	u.PasswordHash = ""
	return u, nil
}
