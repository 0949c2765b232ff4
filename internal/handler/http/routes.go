// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(h.path("/sitemap"), h.sitemap)
		r.Post(h.path("/register"), h.register)
		r.Get(h.path("/verify"), h.verify)
		r.Post(h.path("/login"), h.login)
		r.Get(h.path("/profiles"), h.searchProfiles)
		r.Get(h.path("/profiles/{id}"), h.getProfile)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post(h.path("/cookieLogin"), h.cookieLogin)
		r.Post(h.path("/subscriptions"), h.subscriptions)
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
