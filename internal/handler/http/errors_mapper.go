// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pro-directory/internal/app"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/service"
	"github.com/MKhiriev/pro-directory/internal/store"
	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/internal/validators"
	"github.com/MKhiriev/pro-directory/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrEmptySessionCookie: http.StatusUnauthorized,
	ErrNoSessionInContext: http.StatusUnauthorized,
	ErrInvalidProfileID:   http.StatusNotFound,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusBadRequest,
	service.ErrInvalidVerification:   http.StatusBadRequest,
	service.ErrTokenIsInvalid:        http.StatusUnauthorized,
	service.ErrTokenPayloadIsInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyRegistered: http.StatusConflict,
	store.ErrProfileNotFound:        http.StatusNotFound,
}

// errorMessageMap holds the client-facing wording of mapped errors.
var errorMessageMap = map[error]string{
	ErrInvalidJSON:        app.MsgInvalidJSON,
	ErrEmptySessionCookie: app.MsgNotAuthenticated,
	ErrNoSessionInContext: app.MsgNotAuthenticated,
	ErrInvalidProfileID:   app.MsgInvalidProfile,

	service.ErrInvalidDataProvided:   app.MsgInvalidDataProvided,
	service.ErrInvalidCredentials:    app.MsgInvalidUsernameOrPassword,
	service.ErrInvalidVerification:   app.MsgInvalidEmailOrCode,
	service.ErrTokenIsInvalid:        app.MsgInvalidToken,
	service.ErrTokenPayloadIsInvalid: app.MsgInvalidTokenData,

	store.ErrEmailAlreadyRegistered: app.MsgEmailAlreadyRegistered,
	store.ErrProfileNotFound:        app.MsgProfileNotFound,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client for err. Unmapped
// errors are reported with their own message.
func messageFromError(err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

// writeError answers the request with the status and message mapped from err.
// Unexpected errors are logged with a stack trace.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.ErrWithStack(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error response")
	}
}
