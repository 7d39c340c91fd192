package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
	"github.com/primelabel/labelview/internal/view"
)

// LookupHandler serves the manual lookup form: the entry point patients land
// on, both directly and when a deep link fails and redirects back here.
type LookupHandler struct {
	labels       ports.LabelService
	supportEmail string
}

func NewLookupHandler(labels ports.LabelService, supportEmail string) *LookupHandler {
	return &LookupHandler{labels: labels, supportEmail: supportEmail}
}

type lookupRequest struct {
	SearchType      string `form:"search_type" validate:"required,oneof=identifier batch kit"`
	IdentifierCode  string `form:"identifier_code"`
	SponsorName     string `form:"sponsor_name"`
	TrialIdentifier string `form:"trial_identifier"`
	BatchNumber     string `form:"batch_number"`
	KitNumber       string `form:"kit_number"`
}

// lookupPage is the template data for lookup.html.
type lookupPage struct {
	Page
	lookupRequest

	// URLError is the one-shot message carried over from a failed deep
	// link; it is displayed once and not propagated further.
	URLError string
	Error    string
	Notice   string

	Label *view.LabelView
	Langs []langOption
}

// Show renders the lookup form. GET /lookup (and /).
func (h *LookupHandler) Show(c echo.Context) error {
	page := lookupPage{
		Page:     newPage(c, "Lookup Your Label", h.supportEmail),
		URLError: c.QueryParam("error"),
	}
	page.SearchType = "identifier"
	return c.Render(http.StatusOK, "lookup.html", page)
}

// Submit performs a manual lookup and renders the result inline. POST /lookup.
func (h *LookupHandler) Submit(c echo.Context) error {
	var req lookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	page := lookupPage{
		Page:          newPage(c, "Lookup Your Label", h.supportEmail),
		lookupRequest: req,
	}

	if err := c.Validate(&req); err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusOK, "lookup.html", page)
	}

	key, err := req.key()
	if err != nil {
		page.Error = "Please fill in all fields for the chosen search method"
		return c.Render(http.StatusOK, "lookup.html", page)
	}

	scope := lookupScope(c)
	seq := h.labels.Issue(scope)
	label, err := h.labels.Resolve(c.Request().Context(), scope, seq, key)
	switch {
	case errors.Is(err, domain.ErrSuperseded):
		// A newer lookup from the same visitor owns the page now.
		page.Notice = "A newer search replaced this one, its results are shown instead."
		return c.Render(http.StatusOK, "lookup.html", page)
	case err != nil:
		page.Error = domain.UserMessage(err, "Label not found")
		return c.Render(http.StatusOK, "lookup.html", page)
	}

	page.Label = view.Build(label, requestLocale(c))
	page.Langs = langOptions(page.Label)
	return c.Render(http.StatusOK, "lookup.html", page)
}

// key narrows the loose form into the shape the radio buttons selected, so a
// leftover value in a hidden input cannot change the search method.
func (r *lookupRequest) key() (domain.LookupKey, error) {
	switch r.SearchType {
	case "identifier":
		return domain.KeyFromParams(r.IdentifierCode, "", "", "", "")
	case "batch":
		return domain.KeyFromParams("", r.SponsorName, r.TrialIdentifier, r.BatchNumber, "")
	case "kit":
		return domain.KeyFromParams("", r.SponsorName, r.TrialIdentifier, "", r.KitNumber)
	}
	return domain.LookupKey{}, domain.ErrInvalidLookup
}
