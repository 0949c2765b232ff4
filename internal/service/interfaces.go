// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/pro-directory/internal/mailer"
	"github.com/MKhiriev/pro-directory/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.RegisteredAccount, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
	VerifyUser(ctx context.Context, verification models.Verification) error

	CreateToken(ctx context.Context, session models.AccountSession) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, id int64) (models.Profile, error)
	SearchProfiles(ctx context.Context, search models.ProfileSearch) ([]models.PartialProfile, error)
	// Sitemap lists the crawlable profiles; total counts every listed profile,
	// including those left out of the sitemap.
	Sitemap(ctx context.Context) (urls models.URLSet, total int, err error)
}

type SubscriptionService interface {
	RegisterSubscription(ctx context.Context, accountID int64, sub models.PushSubscription, userAgent string) (int64, error)
}

// MailQueue schedules email for asynchronous delivery.
type MailQueue interface {
	Enqueue(msg mailer.Message) error
}
