// Package health exposes liveness and readiness endpoints.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/fkhayef/simpleapp/pkg/response"
)

// Checker is anything that can report connectivity, such as *sql.DB.
type Checker interface {
	PingContext(ctx context.Context) error
}

// Handler manages health check endpoints.
type Handler struct {
	db Checker
}

// NewHandler creates a new health Handler. db may be nil when no database is
// configured.
func NewHandler(db Checker) *Handler {
	return &Handler{db: db}
}

// Response represents the health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Live reports that the process is serving requests.
//
// GET /health
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, Response{Status: "ok"})
}

// Ready reports whether the database is reachable.
//
// GET /readyz
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status, code := "ok", http.StatusOK

	switch {
	case h.db == nil:
		checks["database"] = "not configured"
	default:
		if err := h.db.PingContext(ctx); err != nil {
			checks["database"] = "error: " + err.Error()
			status, code = "unhealthy", http.StatusServiceUnavailable
		} else {
			checks["database"] = "ok"
		}
	}

	response.JSON(w, code, Response{Status: status, Checks: checks})
}
