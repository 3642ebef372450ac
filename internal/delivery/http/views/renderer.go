package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page is the data every template receives.
type Page struct {
	Title   string
	Flash   *helpers.Flash
	Warning string
	// Errors holds field-level messages for forms, keyed by form field name.
	Errors map[string]string
	// Values holds the form values to render into inputs.
	Values url.Values
	Data   any
	States []string
	Genres []string
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"fmtTime": func(t time.Time) string { return t.Format("Mon Jan 2, 2006 3:04PM") },
	"has":     func(list []string, v string) bool { return slices.Contains(list, v) },
	"join":    strings.Join,
	"dict":    dict,
}

// dict builds a map from alternating keys and values so partials can take several arguments.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

// NewRenderer parses every page template up front so missing or broken files fail at startup.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name with status. The template is executed into a buffer first,
// so a failing template never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p *Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if p.States == nil {
		p.States = domain.States
	}
	if p.Genres == nil {
		p.Genres = domain.Genres
	}
	if p.Values == nil {
		p.Values = url.Values{}
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
