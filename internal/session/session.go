// Package session tracks sign-in state for a browsing client. A session is
// an explicitly constructed object keyed by an opaque cookie ID and
// persisted in a Store; it is mutated only through Login and Logout.
package session

import (
	"context"
	"time"

	"github.com/primelabel/labelview/internal/core/domain"
)

// CookieName is the fixed cookie under which the session ID is stored.
const CookieName = "labelview_session"

// DefaultTTL bounds how long an untouched session survives in the store.
const DefaultTTL = 24 * time.Hour

// Session is the sign-in state shared by the navigation shell (gating) and
// the upstream gateway (bearer-token attachment).
type Session struct {
	ID        string       `json:"id"`
	Token     string       `json:"token,omitempty"`
	User      *domain.User `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsAuthenticated reports whether the session carries a bearer token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// Login sets the token and user record on the session.
func (s *Session) Login(token string, user *domain.User) {
	s.Token = token
	s.User = user
}

// Logout clears the token and user record.
func (s *Session) Logout() {
	s.Token = ""
	s.User = nil
}

// Store persists sessions by ID. Get returns domain.ErrSessionNotFound for
// unknown or expired IDs.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
