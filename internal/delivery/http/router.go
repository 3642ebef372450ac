package http

import (
	"log/slog"
	"net/http"

	"showbooking/internal/delivery/http/controllers"
	"showbooking/internal/delivery/http/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers the router dispatches to.
type Controllers struct {
	Pages   *controllers.Pages
	Home    *controllers.HomeController
	Venues  *controllers.VenueController
	Artists *controllers.ArtistController
	Shows   *controllers.ShowController
	Health  *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.Home.Index)

	// Venues
	mux.HandleFunc("GET /venues", c.Venues.List)
	mux.HandleFunc("POST /venues/search", c.Venues.Search)
	mux.HandleFunc("GET /venues/create", c.Venues.CreateForm)
	mux.HandleFunc("POST /venues/create", c.Venues.Create)
	mux.HandleFunc("GET /venues/{id}", c.Venues.Show)
	mux.HandleFunc("GET /venues/{id}/edit", c.Venues.EditForm)
	mux.HandleFunc("POST /venues/{id}/edit", c.Venues.Edit)
	mux.HandleFunc("DELETE /venues/{id}", c.Venues.Delete)
	mux.HandleFunc("POST /venues/{id}/delete", c.Venues.Delete)

	// Artists
	mux.HandleFunc("GET /artists", c.Artists.List)
	mux.HandleFunc("POST /artists/search", c.Artists.Search)
	mux.HandleFunc("GET /artists/create", c.Artists.CreateForm)
	mux.HandleFunc("POST /artists/create", c.Artists.Create)
	mux.HandleFunc("GET /artists/{id}", c.Artists.Show)
	mux.HandleFunc("GET /artists/{id}/edit", c.Artists.EditForm)
	mux.HandleFunc("POST /artists/{id}/edit", c.Artists.Edit)
	mux.HandleFunc("DELETE /artists/{id}", c.Artists.Delete)
	mux.HandleFunc("POST /artists/{id}/delete", c.Artists.Delete)

	// Shows
	mux.HandleFunc("GET /shows", c.Shows.List)
	mux.HandleFunc("GET /shows/create", c.Shows.CreateForm)
	mux.HandleFunc("POST /shows/create", c.Shows.Create)

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", c.Pages.NotFound)

	return mux
}

// WithMiddleware wraps the router with request ids, access logging, metrics and method override.
// Metrics sits directly outside the method override so it observes the pattern the mux matched.
func WithMiddleware(logger *slog.Logger, mux *http.ServeMux) http.Handler {
	var h http.Handler = middleware.MethodOverride(mux)
	h = middleware.Metrics(h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
