// Package handler provides HTTP handlers for all API endpoints. Handlers
// resolve profiles through the wow service and attach derived view values;
// no database, the TTL cache is the only state.
package handler

import (
	"net/http"
	"time"

	"github.com/Tony1885/tonyWoW/internal/api/respond"
	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/config"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/wow"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	service *wow.Service
	deriver *derive.Deriver
	cache   *cache.Cache
	cfg     *config.Config
}

// New creates a Handler with shared dependencies.
func New(service *wow.Service, deriver *derive.Deriver, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		service: service,
		deriver: deriver,
		cache:   c,
		cfg:     cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "tonyWoW API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"optimizations": []string{
			"in_memory_cache",
			"negative_caching",
			"etag_support",
			"gzip_compression",
			"provider_rate_limiting",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
