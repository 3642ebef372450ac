package middleware

import (
	"net/http"
	"time"

	"showbooking/internal/monitoring"
)

// Metrics records request counts and latency per matched route pattern. It must wrap
// the ServeMux without another layer replacing the request, so r.Pattern is visible.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		monitoring.TrackRequest(methodLabel(r.Method), route, wrapped.status, time.Since(start))
	})
}

// methodLabel folds methods outside the standard set into "other" so clients cannot
// grow the metric label space.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	}
	return "other"
}
