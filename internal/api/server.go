package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Tony1885/tonyWoW/internal/api/handler"
	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/config"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/wow"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(service *wow.Service, deriver *derive.Deriver, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(service, deriver, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Characters
		r.Get("/characters/{region}/{realm}/{name}", h.GetCharacter)
		r.Get("/characters/{region}/{realm}/{name}/links", h.GetCharacterLinks)

		// Static dashboard content
		r.Get("/roster", h.GetRoster)
		r.Get("/meta/tierlist", h.GetMetaTierList)
	})

	return r
}
