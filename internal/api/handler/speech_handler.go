package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
	"github.com/primelabel/labelview/internal/speech"
	"github.com/primelabel/labelview/internal/view"
)

// SpeechHandler exposes the read-aloud controls as a small JSON API used by
// the label page buttons.
type SpeechHandler struct {
	labels  ports.LabelService
	speaker *speech.Speaker
}

func NewSpeechHandler(labels ports.LabelService, speaker *speech.Speaker) *SpeechHandler {
	return &SpeechHandler{labels: labels, speaker: speaker}
}

type speechRequest struct {
	IdentifierCode  string `json:"identifierCode"`
	SponsorName     string `json:"sponsorName"`
	TrialIdentifier string `json:"trialIdentifier"`
	BatchNumber     string `json:"batchNumber"`
	KitNumber       string `json:"kitNumber"`
	Lang            string `json:"lang" validate:"required"`
}

type speechResponse struct {
	State speech.State `json:"state"`
}

// Start resolves the label again and begins reading it aloud in the
// requested language. Starting again in the same language while speaking is
// a no-op; a different language restarts the utterance with the new voice.
// POST /api/speech.
func (h *SpeechHandler) Start(c echo.Context) error {
	var req speechRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key, err := domain.KeyFromParams(req.IdentifierCode, req.SponsorName, req.TrialIdentifier, req.BatchNumber, req.KitNumber)
	if err != nil {
		return err
	}

	label, err := h.labels.Resolve(c.Request().Context(), lookupScope(c), 0, key)
	if err != nil {
		return err
	}

	state, err := h.speaker.Start(req.Lang, view.SpeechText(label, req.Lang))
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "read-aloud is not available")
	}
	return c.JSON(http.StatusOK, speechResponse{State: state})
}

// Stop cancels the active utterance. Idle is a no-op. DELETE /api/speech.
func (h *SpeechHandler) Stop(c echo.Context) error {
	return c.JSON(http.StatusOK, speechResponse{State: h.speaker.Stop()})
}

// State reports the current playback state. GET /api/speech.
func (h *SpeechHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, speechResponse{State: h.speaker.State()})
}
