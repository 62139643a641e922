package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-social-hub/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// Init builds the chi router with the full middleware chain and route
// table. Rate limiting applies per client IP to every /api route, with a
// stricter limit on the register and login endpoints.
func (h *Handler) Init(cfg config.RateLimit) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	authLimiter := rateLimiter(cfg.AuthRequestLimit, cfg.AuthWindowLength)

	router.Route("/api", func(api chi.Router) {
		api.Use(rateLimiter(cfg.RequestLimit, cfg.WindowLength))

		// routes without authorization
		api.Group(func(r chi.Router) {
			r.With(authLimiter).Post("/users/register", h.register)
			r.With(authLimiter).Post("/users/login", h.login)
			r.Get("/users/{id}", h.getUser)

			r.Get("/posts", h.getAllPosts)
			r.Get("/posts/{id}", h.getPost)
			r.Get("/comments/post/{postId}", h.getCommentsByPost)
			r.Get("/likes/{postId}", h.getLikes)
			r.Get("/follows/followers/{userId}", h.getFollowers)
			r.Get("/follows/following/{userId}", h.getFollowing)
		})

		// routes behind authentication
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/posts", h.createPost)
			r.Put("/posts/{id}", h.updatePost)
			r.Delete("/posts/{id}", h.deletePost)

			r.Post("/comments", h.createComment)
			r.Put("/comments/{id}", h.updateComment)
			r.Delete("/comments/{id}", h.deleteComment)

			r.Post("/likes/{postId}", h.likePost)
			r.Delete("/likes/{postId}", h.unlikePost)

			r.Post("/follows/{userId}", h.followUser)
			r.Delete("/follows/{userId}", h.unfollowUser)
		})
	})

	return router
}

// rateLimiter builds a per-IP limiter that answers over-limit requests
// with the uniform JSON error envelope instead of httprate's plain-text
// default.
func rateLimiter(requestLimit int, windowLength time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requestLimit, windowLength,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, "Too many requests, please try again later.", http.StatusTooManyRequests)
		}),
	)
}
