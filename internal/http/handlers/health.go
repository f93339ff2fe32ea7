package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/casino-api/internal/http/respond"
)

// HealthHandler serves liveness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register wires the handler into a router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/api/health", h.handleHealth)
}

func (h *HealthHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, map[string]string{
		"status":  "Server is running",
		"message": "Casino API is live",
	})
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, map[string]string{"status": "ok"})
}
