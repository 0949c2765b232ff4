// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/store"
	"github.com/MKhiriev/pro-directory/models"
)

type subscriptionService struct {
	subscriptionRepository store.SubscriptionRepository
	logger                 *logger.Logger
}

func NewSubscriptionService(subscriptionRepository store.SubscriptionRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		logger:                 logger,
	}
}

// RegisterSubscription stores sub for accountID. Registering a known endpoint
// again returns the existing id and changes nothing.
func (s *subscriptionService) RegisterSubscription(ctx context.Context, accountID int64, sub models.PushSubscription, userAgent string) (int64, error) {
	if accountID == 0 || sub.Endpoint == "" {
		return 0, ErrInvalidDataProvided
	}

	id, err := s.subscriptionRepository.SaveSubscription(ctx, accountID, sub, userAgent)
	if err != nil {
		return 0, fmt.Errorf("subscription registration failed: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("account_id", accountID).
		Int64("subscription_id", id).
		Msg("push subscription registered")

	return id, nil
}
