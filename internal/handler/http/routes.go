// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, withRecover)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	// guard sits on the root router so unrouted /dashboard/... paths
	// redirect as well; it ignores /api/ requests
	router.Use(h.guard)

	// API without session
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/stt/config", h.sttConfig)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// API for the signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Put("/api/user/update", h.updateProfile)
		r.Get("/api/user/me", h.me)
	})

	// pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.landingPage)
		r.Get(loginPath, h.loginPage)
		r.Get(signupPath, h.signupPage)
		r.Get(dashboardPath, h.dashboardPage)
		r.Get(dashboardProfilePath, h.profilePage)
		r.Get("/dashboard/agent", h.agentPage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
