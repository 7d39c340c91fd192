package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
	"github.com/primelabel/labelview/internal/view"
)

// LabelHandler serves the deep-link label pages reached from printed QR
// codes. Any failure sends the visitor back to the lookup entry point; the
// error message rides along as a transient query parameter.
type LabelHandler struct {
	labels       ports.LabelService
	supportEmail string
}

func NewLabelHandler(labels ports.LabelService, supportEmail string) *LabelHandler {
	return &LabelHandler{labels: labels, supportEmail: supportEmail}
}

type labelPage struct {
	Page
	Label *view.LabelView
	Langs []langOption
}

// ByIdentifier handles GET /:identifierCode.
func (h *LabelHandler) ByIdentifier(c echo.Context) error {
	key, err := domain.KeyFromParams(c.Param("identifierCode"), "", "", "", "")
	return h.serve(c, key, err)
}

// ByBatch handles GET /:sponsorName/:trialIdentifier/batch/:batchNumber.
func (h *LabelHandler) ByBatch(c echo.Context) error {
	key, err := domain.KeyFromParams("",
		c.Param("sponsorName"), c.Param("trialIdentifier"), c.Param("batchNumber"), "")
	return h.serve(c, key, err)
}

// ByKit handles GET /:sponsorName/:trialIdentifier/kit/:kitNumber.
func (h *LabelHandler) ByKit(c echo.Context) error {
	key, err := domain.KeyFromParams("",
		c.Param("sponsorName"), c.Param("trialIdentifier"), "", c.Param("kitNumber"))
	return h.serve(c, key, err)
}

func (h *LabelHandler) serve(c echo.Context, key domain.LookupKey, keyErr error) error {
	if keyErr != nil {
		// Malformed deep link: silent return to the entry point.
		return c.Redirect(http.StatusFound, "/lookup")
	}

	scope := lookupScope(c)
	seq := h.labels.Issue(scope)
	label, err := h.labels.Resolve(c.Request().Context(), scope, seq, key)
	switch {
	case errors.Is(err, domain.ErrSuperseded):
		return c.Redirect(http.StatusFound, "/lookup")
	case err != nil:
		msg := domain.UserMessage(err, "Label not found")
		return c.Redirect(http.StatusFound, "/lookup?error="+url.QueryEscape(msg))
	}

	v := view.Build(label, requestLocale(c))
	page := labelPage{
		Page:  newPage(c, label.ProductName, h.supportEmail),
		Label: v,
		Langs: langOptions(v),
	}
	return c.Render(http.StatusOK, "label.html", page)
}
