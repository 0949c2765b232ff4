// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/pro-directory/internal/utils"
)

const accessTokenCookie = "accessToken"

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the "accessToken" cookie, verifies it via
// [service.AuthService.ParseToken] and stores the decoded session in the
// request context (see [utils.WithSession]) before delegating to the next
// handler.
//
// Requests are rejected with HTTP 401 and a JSON body when:
//   - the cookie is absent or empty ("not authenticated");
//   - the token cannot be verified ("invalid authentication token");
//   - the token carries no usable payload ("invalid authentication token data").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(accessTokenCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, r, ErrEmptySessionCookie)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			writeError(w, r, fmt.Errorf("session cookie rejected: %w", err))
			return
		}

		ctx = utils.WithSession(ctx, claims.Session())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
