// Package web embeds the dashboard's HTML templates and static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"supplier-admin/internal/i18n"
)

const (
	PageLogin    = "login"
	PageOverview = "overview"
)

// overview placeholder rows shown while supplier data loads
const skeletonRows = 6

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is the view model shared by every page.
type PageData struct {
	Title string
	Lang  string
	Error string
	Tr    *i18n.Translator

	SkeletonRows []struct{}
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)

	for _, page := range []string{PageLogin, PageOverview} {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page into a buffer first so a template error never
// produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if data.Tr != nil && data.Lang == "" {
		data.Lang = data.Tr.Language()
	}
	if page == PageOverview && data.SkeletonRows == nil {
		data.SkeletonRows = make([]struct{}, skeletonRows)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded assets; mount it behind http.StripPrefix.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func FaviconHandler() http.Handler {
	icon, err := staticFS.ReadFile("static/favicon.svg")
	if err != nil {
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(icon)
	})
}
