package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPagesHandler_Landing(t *testing.T) {
	e := newTestEcho()
	h := NewPagesHandler("http://localhost:8080", "help@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Landing(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `href="/lookup"`) {
		t.Error("landing page must link to the lookup form")
	}
}

func TestPagesHandler_DemoListsDeepLinks(t *testing.T) {
	e := newTestEcho()
	h := NewPagesHandler("http://localhost:8080", "help@example.com")

	req := httptest.NewRequest(http.MethodGet, "/demo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Demo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{"/demo/qr?path=", "batch", "kit"} {
		if !strings.Contains(body, want) {
			t.Errorf("demo page missing %q", want)
		}
	}
}

func TestPagesHandler_DemoQR_RendersPNG(t *testing.T) {
	e := newTestEcho()
	h := NewPagesHandler("http://localhost:8080", "help@example.com")

	req := httptest.NewRequest(http.MethodGet, "/demo/qr?path="+url.QueryEscape("/LBL-2025-0001"), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.DemoQR(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "image/png" {
		t.Fatalf("expected image/png, got %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected PNG bytes")
	}
}

func TestPagesHandler_DemoQR_RejectsForeignTargets(t *testing.T) {
	e := newTestEcho()
	h := NewPagesHandler("http://localhost:8080", "help@example.com")

	for _, path := range []string{"https://evil.example/", "//evil.example/x", "", "LBL-1"} {
		req := httptest.NewRequest(http.MethodGet, "/demo/qr?path="+url.QueryEscape(path), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.DemoQR(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("path %q: expected 400, got %v", path, err)
		}
	}
}
