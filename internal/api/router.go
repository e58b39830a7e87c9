// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/linkmark/internal/config"
	"github.com/tomtom215/linkmark/internal/metrics"
	"github.com/tomtom215/linkmark/internal/middleware"
)

// NewRouter assembles the chi router with the full middleware stack and
// all API routes.
func NewRouter(handler *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.API.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.API.RateLimitDisabled {
			r.Use(rateLimiter(cfg))
		}
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/health", handler.Health)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Post("/", handler.CreateBookmark)
			r.Get("/", handler.ListBookmarks)
			r.Post("/{id}/click", handler.ClickBookmark)
		})

		r.Get("/tags", handler.ListTags)

		r.Route("/suggestions", func(r chi.Router) {
			r.Get("/tags/user/{userID}", handler.SuggestTags)
			r.Get("/collections/user/{userID}", handler.SuggestCollections)
			r.Get("/clusters/user/{userID}", handler.SuggestClusters)
			r.Get("/domain/user/{userID}", handler.SuggestDomain)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimiter builds the per-IP rate limiting middleware.
func rateLimiter(cfg *config.Config) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.API.RateLimitReqs,
		cfg.API.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(r.URL.Path)
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests", nil)
		}),
	)
}
