// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/crypto"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/store"
)

type Services struct {
	AuthService         AuthService
	ProfileService      ProfileService
	SubscriptionService SubscriptionService
}

func NewServices(
	repositories *store.Repositories,
	credentials crypto.CredentialService,
	mailQueue MailQueue,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	return &Services{
		AuthService:         NewAuthService(repositories.AccountRepository, credentials, mailQueue, cfg.App, logger),
		ProfileService:      NewProfileService(repositories.ProfileRepository, cfg.App, logger),
		SubscriptionService: NewSubscriptionService(repositories.SubscriptionRepository, logger),
	}
}
