package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/primelabel/labelview/internal/session"
)

// SessionKey is the echo context key under which the hydrated session lives.
const SessionKey = "session"

// Session hydrates the request's session from its cookie and injects it into
// the echo context. Requests without a cookie get a fresh anonymous session
// that is only persisted if a handler signs it in.
func Session(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionKey, manager.Load(c))
			return next(c)
		}
	}
}

// CurrentSession returns the session injected by the Session middleware,
// or an empty anonymous session when the middleware did not run.
func CurrentSession(c echo.Context) *session.Session {
	if s, ok := c.Get(SessionKey).(*session.Session); ok && s != nil {
		return s
	}
	return &session.Session{}
}
