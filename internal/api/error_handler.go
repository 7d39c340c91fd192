package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the JSON envelope {"error": "<message>"} on API routes and a
//     static error page on document requests.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		if wantsHTML(c) {
			if renderErr := c.Render(code, "error.html", map[string]any{
				"Title":   "Something went wrong",
				"Message": msg,
			}); renderErr == nil {
				return
			}
			// Rendering itself failed; fall back to plain text.
			_ = c.String(code, msg)
			return
		}

		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrLabelNotFound):
		return http.StatusNotFound, domain.UserMessage(err, "Label not found")
	case errors.Is(err, domain.ErrInvalidLookup):
		return http.StatusBadRequest, "invalid lookup parameters"
	case errors.Is(err, domain.ErrSuperseded):
		return http.StatusConflict, "lookup superseded"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session not found"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, domain.UserMessage(err, "label service unavailable")
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// wantsHTML reports whether the client is navigating pages rather than
// calling the JSON API.
func wantsHTML(c echo.Context) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return false
	}
	return strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}
