package http

import (
	"context"
	"net/http"
	"time"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/health"
	"github.com/memoirhq/memoir-backend/internal/store"
)

// HealthHandler exposes service and store health endpoints.
type HealthHandler struct {
	service *health.ServiceHealthChecker
	store   store.Store
}

func NewHealthHandler(service *health.ServiceHealthChecker, st store.Store) *HealthHandler {
	return &HealthHandler{service: service, store: st}
}

// CheckHealth handles GET /api/health using the cached aggregate flag.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	if h.service != nil && !h.service.IsHealthy() {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// CheckStorageHealth handles GET /api/health/db with a direct probe.
func (h *HealthHandler) CheckStorageHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if p, ok := h.store.(health.HealthPinger); ok {
		if err := p.HealthPing(ctx); err != nil {
			respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
