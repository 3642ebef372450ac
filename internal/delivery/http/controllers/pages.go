package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"showbooking/internal/delivery/http/helpers"
	"showbooking/internal/delivery/http/views"
)

// readWarning is shown when a listing could not be loaded.
const readWarning = "An error occurred, please try again later."

// Pages bundles what every controller needs to answer with HTML.
type Pages struct {
	Logger *slog.Logger
	Views  *views.Renderer
	Flash  *helpers.Flasher
}

func NewPages(logger *slog.Logger, renderer *views.Renderer, flash *helpers.Flasher) *Pages {
	return &Pages{Logger: logger, Views: renderer, Flash: flash}
}

// render pops any pending flash into p and writes the page.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name string, page *views.Page) {
	page.Flash = p.Flash.Pop(w, r)
	if err := p.Views.Render(w, status, name, page); err != nil {
		p.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "method", r.Method, "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, "404", &views.Page{Title: "Not found"})
}

func (p *Pages) serverError(w http.ResponseWriter, r *http.Request, err error) {
	p.logFailure(r, err)
	p.render(w, r, http.StatusInternalServerError, "500", &views.Page{Title: "Error"})
}

func (p *Pages) logFailure(r *http.Request, err error) {
	p.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}

// pathID reads the {id} path value. ok is false for anything but a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
