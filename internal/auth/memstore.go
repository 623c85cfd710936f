package auth

import (
	"context"
	"sync"
	"time"

	"thermodash/internal/models"
)

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.Session), now: time.Now}
}

func (s *MemoryStore) Create(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	s.sessions[sess.SID] = *sess
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || sess.Expired(s.now()) {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for sid, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, sid)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
