package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"thermodash/internal/models"
)

type fakeUsers struct {
	users map[int64]models.User
	err   error
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func newTestManager(t *testing.T, store SessionStore) (*Manager, *fakeUsers) {
	t.Helper()
	users := &fakeUsers{users: map[int64]models.User{
		1: {UserID: 1, Email: "admin@example.com", Role: models.RoleAdmin, PasswordHash: "digest"},
		2: {UserID: 2, Email: "user@example.com", Role: models.RoleUser},
	}}
	return NewManager(store, users, "test-secret", time.Hour, zap.NewNop().Sugar()), users
}

func login(t *testing.T, m *Manager, u models.User, r *http.Request) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Login(rec, r, &u))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func withCookie(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/graph", nil)
	r.AddCookie(c)
	return r
}

func TestManagerLoginResolve(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)

	c := login(t, m, models.User{UserID: 1}, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, 1, store.Len())

	u, err := m.Resolve(withCookie(c))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestManagerSecureCookieBehindProxy(t *testing.T) {
	m, _ := newTestManager(t, NewMemoryStore())
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	c := login(t, m, models.User{UserID: 2}, r)
	assert.True(t, c.Secure)
}

func TestManagerResolveUnauthenticated(t *testing.T) {
	store := NewMemoryStore()
	m, users := newTestManager(t, store)

	u, err := m.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = m.Resolve(withCookie(&http.Cookie{Name: CookieName, Value: "forged"}))
	require.NoError(t, err)
	assert.Nil(t, u)

	c := login(t, m, models.User{UserID: 2}, httptest.NewRequest(http.MethodPost, "/login", nil))
	delete(users.users, 2)
	u, err = m.Resolve(withCookie(c))
	require.NoError(t, err)
	assert.Nil(t, u, "deleted user must not resolve")
}

func TestManagerResolveExpiredSession(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)
	c := login(t, m, models.User{UserID: 1}, httptest.NewRequest(http.MethodPost, "/login", nil))

	later := time.Now().Add(2 * time.Hour)
	store.now = func() time.Time { return later }
	m.now = func() time.Time { return later }

	u, err := m.Resolve(withCookie(c))
	require.NoError(t, err)
	assert.Nil(t, u)

	n, err := store.DeleteExpired(context.Background(), later)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 0, store.Len())
}

func TestManagerResolveBackendFailure(t *testing.T) {
	m, users := newTestManager(t, NewMemoryStore())
	c := login(t, m, models.User{UserID: 1}, httptest.NewRequest(http.MethodPost, "/login", nil))

	users.err = errors.New("connection refused")
	u, err := m.Resolve(withCookie(c))
	assert.Error(t, err)
	assert.Nil(t, u)
}

func TestManagerLogout(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)
	c := login(t, m, models.User{UserID: 1}, httptest.NewRequest(http.MethodPost, "/login", nil))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Logout(rec, withCookie(c)))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "", cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)
	assert.Equal(t, 0, store.Len())

	u, err := m.Resolve(withCookie(c))
	require.NoError(t, err)
	assert.Nil(t, u, "old cookie must not resolve after logout")
}

func TestManagerJanitor(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)
	require.NoError(t, store.Create(context.Background(), &models.Session{
		SID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
