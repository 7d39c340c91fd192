package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Manager binds sessions to browser cookies and hydrates them from the
// Store. A stored token that is already past its expiry claim is dropped
// during hydration instead of presenting an optimistic signed-in UI.
type Manager struct {
	store   Store
	expired func(token string) bool
	secure  bool
	ttl     time.Duration
	log     zerolog.Logger
}

// NewManager constructs a Manager. expired may be nil, in which case stored
// tokens are trusted until an upstream request rejects them.
func NewManager(store Store, expired func(string) bool, secure bool, ttl time.Duration, log zerolog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, expired: expired, secure: secure, ttl: ttl, log: log}
}

// Load returns the session for the request's cookie, or a fresh anonymous
// session when there is none. The anonymous session is not persisted until
// Save is called.
func (m *Manager) Load(c echo.Context) *Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{CreatedAt: time.Now()}
	}

	s, err := m.store.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return &Session{CreatedAt: time.Now()}
	}

	if s.Token != "" && m.expired != nil && m.expired(s.Token) {
		m.log.Debug().Str("session_id", s.ID).Msg("dropping expired bearer token from session")
		s.Logout()
		if err := m.store.Put(c.Request().Context(), s); err != nil {
			m.log.Warn().Err(err).Msg("could not persist token drop")
		}
	}
	return s
}

// Save persists the session and (re)issues the cookie. A session without an
// ID gets one here.
func (m *Manager) Save(c echo.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := m.store.Put(c.Request().Context(), s); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the session from the store and expires the cookie.
func (m *Manager) Clear(c echo.Context, s *Session) error {
	s.Logout()
	if s.ID != "" {
		if err := m.store.Delete(c.Request().Context(), s.ID); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
