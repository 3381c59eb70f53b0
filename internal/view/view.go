// Package view renders the HTML pages of the booking site.  Every page is
// parsed together with the shared layout and executed through it.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "layout.html"

// Page template names.
const (
	Home         = "home.html"
	Movie        = "movie.html"
	Cinema       = "cinema.html"
	Seats        = "seats.html"
	Payment      = "payment.html"
	Confirmation = "confirmation.html"
	Error        = "error.html"
)

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page with the layout.
func New() (*Renderer, error) {
	layout, err := template.New(layoutFile).ParseFS(files, "templates/"+layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, p := range names {
		name := path.Base(p)
		if name == layoutFile {
			continue
		}
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Must is New for program start-up.
func Must() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, layoutFile, data)
}
