// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionRepo(t *testing.T) (*subscriptionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &subscriptionRepository{db: db, logger: logger.Nop()}, mock
}

func testSubscription() models.PushSubscription {
	expiration := int64(1893456000)
	return models.PushSubscription{
		Endpoint:       "https://push.example.com/abc",
		ExpirationTime: &expiration,
		Keys:           models.PushSubscriptionKeys{Auth: "auth", P256dh: "p256dh"},
	}
}

func idRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	return rows
}

func TestSaveSubscription_ExistingEndpointReturnsSameID(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM push_subscriptions").
			WithArgs(sub.Endpoint).
			WillReturnRows(idRows(11))
		mock.ExpectCommit()
	}

	first, err := repo.SaveSubscription(context.Background(), 1, sub, "Firefox")
	require.NoError(t, err)

	// other account and keys: the stored row is returned unchanged
	other := sub
	other.Keys.Auth = "different"
	second, err := repo.SaveSubscription(context.Background(), 2, other, "Chrome")
	require.NoError(t, err)

	assert.Equal(t, int64(11), first)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_NewEndpointKnownUserAgent(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").
		WithArgs(sub.Endpoint).
		WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM user_agents").
		WithArgs("Firefox").
		WillReturnRows(idRows(3))
	mock.ExpectQuery("INSERT INTO push_subscriptions").
		WithArgs(int64(1), sub.Endpoint, *sub.ExpirationTime, "p256dh", "auth", int64(3)).
		WillReturnRows(idRows(12))
	mock.ExpectCommit()

	id, err := repo.SaveSubscription(context.Background(), 1, sub, "Firefox")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_CreatesUserAgent(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM user_agents").
		WithArgs("Safari").
		WillReturnRows(idRows())
	mock.ExpectQuery("INSERT INTO user_agents").
		WithArgs("Safari").
		WillReturnRows(idRows(4))
	mock.ExpectQuery("INSERT INTO push_subscriptions").
		WithArgs(int64(1), sub.Endpoint, *sub.ExpirationTime, "p256dh", "auth", int64(4)).
		WillReturnRows(idRows(13))
	mock.ExpectCommit()

	id, err := repo.SaveSubscription(context.Background(), 1, sub, "Safari")
	require.NoError(t, err)
	assert.Equal(t, int64(13), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_EmptyUserAgentAndNullExpiration(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()
	sub.ExpirationTime = nil

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("INSERT INTO push_subscriptions").
		WithArgs(int64(1), sub.Endpoint, nil, "p256dh", "auth", nil).
		WillReturnRows(idRows(14))
	mock.ExpectCommit()

	id, err := repo.SaveSubscription(context.Background(), 1, sub, "")
	require.NoError(t, err)
	assert.Equal(t, int64(14), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSaveSubscription_LostInsertRace covers a concurrent submission of the
// same endpoint: ON CONFLICT DO NOTHING returns no row and the winner's id is
// read back.
func TestSaveSubscription_LostInsertRace(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM user_agents").WillReturnRows(idRows(3))
	mock.ExpectQuery("INSERT INTO push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM push_subscriptions").
		WithArgs(sub.Endpoint).
		WillReturnRows(idRows(20))
	mock.ExpectCommit()

	id, err := repo.SaveSubscription(context.Background(), 1, sub, "Firefox")
	require.NoError(t, err)
	assert.Equal(t, int64(20), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_LostUserAgentRace(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)
	sub := testSubscription()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM user_agents").WillReturnRows(idRows())
	mock.ExpectQuery("INSERT INTO user_agents").WillReturnRows(idRows())
	mock.ExpectQuery("SELECT id FROM user_agents").WillReturnRows(idRows(8))
	mock.ExpectQuery("INSERT INTO push_subscriptions").
		WithArgs(int64(1), sub.Endpoint, *sub.ExpirationTime, "p256dh", "auth", int64(8)).
		WillReturnRows(idRows(21))
	mock.ExpectCommit()

	id, err := repo.SaveSubscription(context.Background(), 1, sub, "Edge")
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnRows(idRows())
	mock.ExpectQuery("INSERT INTO push_subscriptions").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.SaveSubscription(context.Background(), 1, testSubscription(), "")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSubscription_SelectError(t *testing.T) {
	repo, mock := newTestSubscriptionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM push_subscriptions").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.SaveSubscription(context.Background(), 1, testSubscription(), "")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
