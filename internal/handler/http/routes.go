package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS().Handler)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRateLimit)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Put("/profile", h.updateProfile)
			})
		})

		r.Route("/creators", func(r chi.Router) {
			r.Get("/", h.getCreators)
			r.Get("/{id}", h.getCreator)
			r.Get("/{id}/followers", h.getCreatorFollowers)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.getRecipes)
			r.Get("/{id}", h.getRecipe)
			r.Get("/{id}/filters", h.getRecipeFilters)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createRecipe)
				r.Put("/{id}", h.updateRecipe)
				r.Delete("/{id}", h.deleteRecipe)

				r.Post("/{id}/filters", h.attachFilter)
				r.Delete("/{id}/filters", h.clearRecipeFilters)
				r.Delete("/{id}/filters/{filterID}", h.detachFilter)
				r.Delete("/{id}/filters/value/{value}", h.detachFilterByValue)
			})
		})

		r.Get("/categories", h.getCategories)
		r.Get("/categories/{id}/filters", h.getCategoryFilters)
		r.Get("/filters", h.getCategorizedFilters)

		r.Route("/favorites", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.getFavorites)
			r.Get("/{recipeID}", h.isFavorite)
			r.Post("/{recipeID}", h.addToFavorites)
			r.Delete("/{recipeID}", h.removeFromFavorites)
			r.Delete("/records/{id}", h.removeFavoriteRecord)
		})

		r.Route("/following", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.getFollowing)
			r.Get("/{creatorID}", h.isFollowing)
			r.Post("/{creatorID}", h.follow)
			r.Delete("/{creatorID}", h.unfollow)
			r.Delete("/records/{id}", h.removeFollowRecord)
		})

		r.Route("/images", func(r chi.Router) {
			r.With(h.auth).Post("/", h.uploadImage)
			r.Get("/{key}", h.getImage)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	})
}
