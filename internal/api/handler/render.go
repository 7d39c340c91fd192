package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/primelabel/labelview/internal/api/middleware"
	"github.com/primelabel/labelview/internal/i18n"
	"github.com/primelabel/labelview/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"flag": flagEmoji,
}

// TemplateRenderer satisfies echo.Renderer over the embedded page templates.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates. Parse errors are
// programming errors, so this panics rather than returning one.
func NewTemplateRenderer() *TemplateRenderer {
	t := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
	return &TemplateRenderer{templates: t}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// flagEmoji converts an ISO country token to its regional-indicator emoji;
// tokens that are not two letters come back unchanged.
func flagEmoji(country string) string {
	if len(country) != 2 {
		return country
	}
	out := make([]rune, 0, 2)
	for _, r := range country {
		if r < 'A' || r > 'Z' {
			return country
		}
		out = append(out, 0x1F1E6+r-'A')
	}
	return string(out)
}

// Page carries the fields every template needs for the shell: title and
// navigation gating.
type Page struct {
	Title         string
	Authenticated bool
	UserName      string
	SupportEmail  string
}

func newPage(c echo.Context, title, supportEmail string) Page {
	sess := middleware.CurrentSession(c)
	p := Page{
		Title:         title,
		Authenticated: sess.IsAuthenticated(),
		SupportEmail:  supportEmail,
	}
	if sess.User != nil {
		p.UserName = sess.User.DisplayName()
	}
	return p
}

// langOption is one entry in the flag-style language chooser.
type langOption struct {
	Tag      string
	Country  string
	Selected bool
}

func langOptions(v *view.LabelView) []langOption {
	opts := make([]langOption, 0, len(v.Languages))
	for _, tag := range v.Languages {
		opts = append(opts, langOption{
			Tag:      tag,
			Country:  i18n.CountryForTag(tag),
			Selected: tag == v.Selected,
		})
	}
	return opts
}
