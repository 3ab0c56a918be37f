// Package render provides the server-side HTML renderer for the web forms.
package render

import (
	"embed"
	"html/template"
	"io"

	domainerrors "ezytutor/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Parsing happens once at startup; a broken
// template fails the boot, not a request.
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, domainerrors.ErrTemplateRender.WrapMessage("failed to parse page templates")
	}

	return &Renderer{templates: templates}, nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return domainerrors.ErrTemplateRender.WrapMessage("failed to render " + name)
	}

	return nil
}
