package controllers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	DB      Pinger
	Timeout time.Duration
}

func NewHealthController(db Pinger, timeout time.Duration) *HealthController {
	return &HealthController{DB: db, Timeout: timeout}
}

// Health godoc
// @Summary Liveness and database check
// @Tags ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "database unavailable"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := c.DB.PingContext(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("database unavailable\n"))
		return
	}
	_, _ = w.Write([]byte("ok\n"))
}
