package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-metaverse-api/internal/config"
	"go-metaverse-api/internal/handler"
	"go-metaverse-api/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Avatar *handler.AvatarHandler
	Space  *handler.SpaceHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	// Each router owns its metrics registry so repeated construction
	// (servers in tests) never collides on metric registration.
	registry := prometheus.NewRegistry()
	metricsMiddleware := middleware.NewMetricsMiddleware(registry)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(metricsMiddleware.Handler)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/signup", h.Auth.Signup)
		api.Post("/signin", h.Auth.Signin)

		api.Get("/user/metadata/bulk", h.User.BulkMetadata)
		api.With(authMiddleware.RequireAuth).Post("/user/metadata", h.User.UpdateMetadata)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole("admin"))
			admin.Get("/avatar", h.Avatar.Create)
			admin.Get("/avatars", h.Avatar.List)
		})

		api.Route("/space", func(space chi.Router) {
			space.Use(authMiddleware.RequireAuth)
			space.Post("/", h.Space.Create)
			space.Get("/all", h.Space.ListOwn)
			space.Get("/{spaceId}", h.Space.Get)
			space.Delete("/{spaceId}", h.Space.Delete)
		})
	})

	return r
}
