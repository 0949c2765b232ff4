// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/handler/http"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/service"
	"github.com/MKhiriev/pro-directory/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
