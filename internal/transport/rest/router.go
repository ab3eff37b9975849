package rest

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/projecthub/community-backend/internal/config"
	"github.com/projecthub/community-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Health    *HealthHandler
	Spaces    *SpaceHandler
	Posts     *PostHandler
	Auth      middleware.Middleware
	RateLimit middleware.Middleware
}

// NewRouter builds the HTTP routing tree. Health endpoints are open; the
// community API under /api/community requires an authenticated identity.
func NewRouter(cfg config.CORSConfig, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   strings.Split(cfg.AllowedMethods, ","),
		AllowedHeaders:   strings.Split(cfg.AllowedHeaders, ","),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}))

	r.Get("/health", deps.Health.Health)
	r.Get("/health/live", deps.Health.Live)
	r.Get("/health/ready", deps.Health.Ready)

	r.Route("/api/community", func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		r.Use(deps.Auth)
		r.Use(middleware.RequireAuth)

		r.Route("/spaces", func(r chi.Router) {
			r.Get("/", deps.Spaces.List)
			r.Post("/", deps.Spaces.Create)
			r.Get("/{spaceID}", deps.Spaces.Get)
			r.Put("/{spaceID}", deps.Spaces.Update)
			r.Delete("/{spaceID}", deps.Spaces.Delete)
			r.Post("/{spaceID}/join", deps.Spaces.Join)
			r.Post("/{spaceID}/leave", deps.Spaces.Leave)
			r.Get("/{spaceID}/analytics", deps.Spaces.Analytics)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", deps.Posts.Create)
			r.Get("/space/{spaceID}", deps.Posts.ListBySpace)
			r.Get("/{postID}", deps.Posts.Get)
			r.Put("/{postID}", deps.Posts.Update)
			r.Delete("/{postID}", deps.Posts.Delete)
			r.Post("/{postID}/react", deps.Posts.React)
			r.Post("/{postID}/bookmark", deps.Posts.Bookmark)
			r.Post("/{postID}/poll/vote", deps.Posts.Vote)
		})
	})

	return r
}
