// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/models"
)

// sessionCookieExpiry is the largest 32-bit unix time; sessions do not expire.
var sessionCookieExpiry = time.Unix(2147483647, 0)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.Registration
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, body); err != nil {
		writeError(w, r, err)
		return
	}

	registered, err := h.services.AuthService.RegisterUser(ctx, body.Credentials())
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", registered.ID).Msg("account registered")

	h.startSession(w, r, models.AccountSession{ID: registered.ID, EmailAddress: body.EmailAddress})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body models.Credentials
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, body); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, models.AccountSession{ID: account.ID, EmailAddress: body.EmailAddress})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	verification := models.Verification{
		EmailAddress: query.Get("emailAddress"),
		Code:         query.Get("code"),
	}
	if err := h.validator.Validate(ctx, verification); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.VerifyUser(ctx, verification); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, h.verifyRedirectURL, http.StatusFound)
}

func (h *Handler) cookieLogin(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSessionInContext)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

// startSession signs a token for session, sets it as the session cookie and
// echoes session as the response body.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, session models.AccountSession) {
	token, err := h.services.AuthService.CreateToken(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.String(),
		Path:     h.path("/"),
		Expires:  sessionCookieExpiry,
		HttpOnly: true,
		Secure:   true,
	})

	utils.WriteJSON(w, session, http.StatusOK)
}
