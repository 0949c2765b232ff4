// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/models"
)

// subscriptionRepository is the PostgreSQL-backed implementation of
// [SubscriptionRepository].
//
// Deduplication by endpoint relies on the unique index on
// push_subscriptions.endpoint: a losing concurrent insert returns no row and
// the winner's id is re-read.
type subscriptionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	logger.Debug().Msg("creating subscription repository")
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *subscriptionRepository) SaveSubscription(ctx context.Context, accountID int64, sub models.PushSubscription, userAgent string) (int64, error) {
	log := logger.FromContext(ctx)

	var subscriptionID int64
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		existingID, found, err := selectID(ctx, tx, findSubscriptionByEndpoint, sub.Endpoint)
		if err != nil {
			return err
		}
		if found {
			subscriptionID = existingID
			return nil
		}

		userAgentID, err := resolveUserAgent(ctx, tx, userAgent)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx, createSubscription,
			accountID,
			sub.Endpoint,
			sub.ExpirationTime,
			sub.Keys.P256dh,
			sub.Keys.Auth,
			userAgentID,
		).Scan(&subscriptionID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		// lost the insert race: read the winner's id
		subscriptionID, found, err = selectID(ctx, tx, findSubscriptionByEndpoint, sub.Endpoint)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: subscription vanished after conflict", ErrExecutingQuery)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*subscriptionRepository.SaveSubscription").
			Int64("account_id", accountID).
			Bool("transient", isTransient(err)).
			Msg("failed to save subscription")
		return 0, err
	}

	return subscriptionID, nil
}

// resolveUserAgent returns the id of userAgent, creating the row when it is
// new. An empty user agent resolves to NULL.
func resolveUserAgent(ctx context.Context, tx *sql.Tx, userAgent string) (sql.NullInt64, error) {
	if userAgent == "" {
		return sql.NullInt64{}, nil
	}

	id, found, err := selectID(ctx, tx, findUserAgent, userAgent)
	if err != nil {
		return sql.NullInt64{}, err
	}
	if found {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	id, found, err = selectID(ctx, tx, createUserAgent, userAgent)
	if err != nil {
		return sql.NullInt64{}, err
	}
	if !found {
		// inserted concurrently by another request
		id, found, err = selectID(ctx, tx, findUserAgent, userAgent)
		if err != nil {
			return sql.NullInt64{}, err
		}
		if !found {
			return sql.NullInt64{}, fmt.Errorf("%w: user agent vanished after conflict", ErrExecutingQuery)
		}
	}

	return sql.NullInt64{Int64: id, Valid: true}, nil
}

// selectID runs a single-column id query. found is false when it returns no row.
func selectID(ctx context.Context, tx *sql.Tx, query string, args ...any) (id int64, found bool, err error) {
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		return id, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
