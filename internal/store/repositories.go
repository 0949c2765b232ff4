// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/pro-directory/internal/logger"

// Repositories groups every repository backed by one connection pool.
type Repositories struct {
	AccountRepository      AccountRepository
	ProfileRepository      ProfileRepository
	SubscriptionRepository SubscriptionRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		AccountRepository:      NewAccountRepository(db, log),
		ProfileRepository:      NewProfileRepository(db, log),
		SubscriptionRepository: NewSubscriptionRepository(db, log),
	}
}
