// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for
// Pagecraft: the /api content and media endpoints consumed by the
// dashboard, and the public page and stylesheet routes.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"pagecraft/internal/handlers"
	"pagecraft/internal/middleware"
	"pagecraft/internal/render"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, public *render.Renderer, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Content API — cross-origin, the dashboard runs on its own host.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler)

		r.Get("/pages", api.Pages)
		r.Post("/pages", api.SavePages)
		r.Get("/sections", api.Sections)
		r.Post("/sections", api.SaveSections)
		r.Get("/menus", api.Menus)
		r.Post("/menus", api.SaveMenus)
		r.Get("/settings", api.Settings)
		r.Post("/settings", api.SaveSettings)
		r.Get("/theme", api.Theme)
		r.Post("/theme", api.SaveTheme)
		r.Get("/typography", api.Typography)
		r.Post("/typography", api.SaveTypography)
		r.Get("/logo", api.Logo)
		r.Post("/logo", api.SaveLogo)
		r.Get("/header-variation", api.HeaderVariation)
		r.Post("/header-variation", api.SaveHeaderVariation)
		r.Get("/dark-mode", api.DarkMode)
		r.Get("/debug-settings", api.DebugSettings)

		// Uploads and imports hit the asset host; keep abuse in check.
		mediaLimiter := middleware.NewRateLimiter(30, time.Minute)
		r.Route("/media", func(r chi.Router) {
			r.Use(mediaLimiter.Middleware)
			r.Post("/upload", api.MediaUpload)
			r.Get("/list", api.MediaList)
			r.Post("/delete", api.MediaDelete)
			r.Post("/import-by-url", api.MediaImportByURL)
		})

		r.Get("/stock-photos/search", api.StockPhotoSearch)
	})

	// Public routes.
	r.Get("/theme.css", public.ThemeCSS)
	r.Get("/", public.Home)
	r.Get("/{slug}", func(w http.ResponseWriter, req *http.Request) {
		public.Page(w, req, chi.URLParam(req, "slug"))
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
