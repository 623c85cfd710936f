package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"thermodash/internal/models"
)

const (
	CookieName      = "thermodash.sid"
	DefaultTTL      = 30 * 24 * time.Hour
	JanitorInterval = 15 * time.Minute
	sessionIDBytes  = 32
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists sessions. Get returns ErrSessionNotFound for unknown
// or expired ids.
type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, sid string) (*models.Session, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// UserLookup returns models.ErrNotFound (possibly wrapped) for a missing user.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type Manager struct {
	store  SessionStore
	users  UserLookup
	signer *Signer
	ttl    time.Duration
	lg     *zap.SugaredLogger
	now    func() time.Time
}

func NewManager(store SessionStore, users UserLookup, secret string, ttl time.Duration, lg *zap.SugaredLogger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		users:  users,
		signer: NewSigner(secret),
		ttl:    ttl,
		lg:     lg,
		now:    time.Now,
	}
}

// Login starts a new session for u and sets the session cookie on w.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, u *models.User) error {
	sid, err := NewToken(sessionIDBytes)
	if err != nil {
		return fmt.Errorf("session id: %w", err)
	}
	now := m.now().UTC()
	sess := &models.Session{SID: sid, UserID: u.UserID, ExpiresAt: now.Add(m.ttl), CreatedAt: now}
	if err := m.store.Create(r.Context(), sess); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	tok, err := m.signer.Sign(SessionClaims{SessionID: sid, UserID: u.UserID, ExpiresAt: sess.ExpiresAt})
	if err != nil {
		_ = m.store.Delete(r.Context(), sid)
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve returns the user the request's session belongs to. Any reason the
// request is not authenticated yields (nil, nil); an error means a backend
// could not be consulted.
func (m *Manager) Resolve(r *http.Request) (*models.User, error) {
	claims, ok := m.claims(r)
	if !ok {
		return nil, nil
	}
	ctx := r.Context()
	sess, err := m.store.Get(ctx, claims.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.UserID != claims.UserID {
		return nil, nil
	}
	if sess.Expired(m.now()) {
		if err := m.store.Delete(ctx, sess.SID); err != nil {
			m.lg.Warnw("expired session delete failed", "error", err)
		}
		return nil, nil
	}
	u, err := m.users.GetUserByID(ctx, sess.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	u.PasswordHash = ""
	return u, nil
}

// Logout deletes the request's session, if any, and clears the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	var err error
	if claims, ok := m.claims(r); ok {
		err = m.store.Delete(r.Context(), claims.SessionID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   isSecure(r),
		SameSite: http.SameSiteLaxMode,
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// RunJanitor prunes expired sessions every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = JanitorInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := m.store.DeleteExpired(ctx, m.now().UTC())
			if err != nil {
				m.lg.Errorw("session prune failed", "error", err)
				continue
			}
			if n > 0 {
				m.lg.Debugw("pruned sessions", "count", n)
			}
		}
	}
}

func (m *Manager) claims(r *http.Request) (SessionClaims, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return SessionClaims{}, false
	}
	claims, err := m.signer.Verify(c.Value)
	if err != nil {
		return SessionClaims{}, false
	}
	return claims, true
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
