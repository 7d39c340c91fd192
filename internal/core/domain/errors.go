package domain

import "errors"

var ErrLabelNotFound = errors.New("label not found")
var ErrInvalidLookup = errors.New("invalid lookup parameters")
var ErrSuperseded = errors.New("lookup superseded by a newer request")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
var ErrUpstreamUnavailable = errors.New("label service unavailable")

// UpstreamError carries the message returned by the backend alongside the
// HTTP status it answered with. It wraps the matching sentinel so callers
// can branch with errors.Is while still surfacing the backend's own text.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// Unwrap maps client-error statuses onto ErrLabelNotFound and everything
// else onto ErrUpstreamUnavailable.
func (e *UpstreamError) Unwrap() error {
	if e.Status >= 400 && e.Status < 500 {
		return ErrLabelNotFound
	}
	return ErrUpstreamUnavailable
}

// UserMessage extracts the display message for a failed lookup: the
// backend's message when present, else the fallback.
func UserMessage(err error, fallback string) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}
