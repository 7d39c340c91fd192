package handler

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/primelabel/labelview/internal/api/middleware"
)

// requestLocale determines the display locale the visitor asked for: an
// explicit ?lang= query wins, then the Accept-Language header's best tag.
// Empty means no preference; the renderer then takes the label's first
// language.
func requestLocale(c echo.Context) string {
	if lang := c.QueryParam("lang"); lang != "" {
		return lang
	}

	header := c.Request().Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// lookupScope identifies the viewing session for the supersede guard: the
// session ID when the visitor has one, else the client address.
func lookupScope(c echo.Context) string {
	if sess := middleware.CurrentSession(c); sess.ID != "" {
		return sess.ID
	}
	return c.RealIP()
}
