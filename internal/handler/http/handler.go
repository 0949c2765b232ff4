// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/service"
	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	// pathPrefix is prepended to every route and scopes the session cookie.
	pathPrefix string

	// verifyRedirectURL is where a successful GET /verify sends the browser.
	verifyRedirectURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		validator:         validator,
		traceIDs:          utils.NewUUIDGenerator(),
		pathPrefix:        strings.TrimRight(cfg.Server.PathPrefix, "/"),
		verifyRedirectURL: cfg.App.VerifyRedirectURL,
		logger:            logger,
	}
}

// path returns the full route pattern of p under the configured prefix.
func (h *Handler) path(p string) string {
	return h.pathPrefix + p
}
