package handlers

import (
	"net/http"
	"time"

	"github.com/wolfplanner/wolf-planner-api/internal/http/respond"
)

// HealthHandler serves the unauthenticated liveness endpoints.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates the handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /health", h.health)
}

func (h *HealthHandler) root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Wolf Planner API",
		"status":  "online",
	})
}

func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
