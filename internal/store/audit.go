package store

import (
	"context"
	"fmt"

	"thermodash/internal/models"
)

const (
	ActionLogin           = "LOGIN"
	ActionLogout          = "LOGOUT"
	ActionUserCreate      = "USER_CREATE"
	ActionAccessKeyCreate = "ACCESS_KEY_CREATE"
)

func (s *Store) RecordAudit(ctx context.Context, userID *int64, action string, meta any) error {
	db, cancel := s.conn(ctx)
	defer cancel()
	entry := models.AuditLog{UserID: userID, Action: action, Metadata: models.NewJSONB(meta)}
	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("record audit %s: %w", action, err)
	}
	return nil
}

func (s *Store) ListAudit(ctx context.Context, limit int) ([]models.AuditLog, error) {
	db, cancel := s.conn(ctx)
	defer cancel()
	out := []models.AuditLog{}
	if err := db.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return out, nil
}
