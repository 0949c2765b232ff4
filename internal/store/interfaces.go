// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/pro-directory/models"
)

// AccountRepository persists accounts and their verification state.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with ID and CreatedAt set.
	// Returns ErrEmailAlreadyRegistered when the email address is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail returns the account with the given email address.
	// Returns ErrAccountNotFound when none exists.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// VerifyAccount flips the verified flag of the unverified account whose
	// email and stored code match, returning its id.
	// Returns ErrVerificationNotPending otherwise.
	VerifyAccount(ctx context.Context, email string, code []byte) (int64, error)
}

// ProfileRepository reads the public directory.
type ProfileRepository interface {
	// FindProfile returns the base profile with professions and portrait.
	// Returns ErrProfileNotFound for invisible or missing profiles.
	FindProfile(ctx context.Context, id int64) (models.Profile, error)

	GetCertifications(ctx context.Context, id int64) ([]string, error)
	GetPictures(ctx context.Context, id int64) ([]models.Picture, error)
	GetTestimonials(ctx context.Context, id int64) ([]models.Testimonial, error)

	// SearchProfiles returns the partial profiles matching search.
	SearchProfiles(ctx context.Context, search models.ProfileSearch) ([]models.PartialProfile, error)
}

// SubscriptionRepository persists Web Push subscriptions.
type SubscriptionRepository interface {
	// SaveSubscription stores sub for accountID unless its endpoint is already
	// known, and returns the id of the stored row in both cases.
	SaveSubscription(ctx context.Context, accountID int64, sub models.PushSubscription, userAgent string) (int64, error)
}
