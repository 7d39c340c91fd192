package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

// PagesHandler serves the static shell pages: the landing page and the QR
// deep-link demo.
type PagesHandler struct {
	frontendBase string
	supportEmail string
}

func NewPagesHandler(frontendBase, supportEmail string) *PagesHandler {
	return &PagesHandler{frontendBase: frontendBase, supportEmail: supportEmail}
}

// Landing renders the public entry page. GET /.
func (h *PagesHandler) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", newPage(c, "Clinical Label Viewer", h.supportEmail))
}

type demoSample struct {
	Name string
	Path string
}

type demoPage struct {
	Page
	Samples []demoSample
}

// Demo renders sample deep links with their QR codes. GET /demo.
func (h *PagesHandler) Demo(c echo.Context) error {
	return c.Render(http.StatusOK, "demo.html", demoPage{
		Page: newPage(c, "QR Demo", h.supportEmail),
		Samples: []demoSample{
			{Name: "Identifier code", Path: "/LBL-2025-0001"},
			{Name: "Batch deep link", Path: "/Acme%20Pharma/TRIAL-042/batch/B-1001"},
			{Name: "Kit deep link", Path: "/Acme%20Pharma/TRIAL-042/kit/KIT-77"},
		},
	})
}

// DemoQR renders a PNG QR code for an own-origin path. Absolute URLs and
// anything not starting with "/" are rejected so the endpoint cannot be used
// to mint codes for arbitrary destinations. GET /demo/qr?path=...
func (h *PagesHandler) DemoQR(c echo.Context) error {
	path := c.QueryParam("path")
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return echo.NewHTTPError(http.StatusBadRequest, "path must be a local path")
	}

	png, err := qrcode.Encode(h.frontendBase+path, qrcode.Medium, 192)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
