// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/pro-directory/internal/app"
	"github.com/MKhiriev/pro-directory/internal/service"
	"github.com/MKhiriev/pro-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSubscriptionBody = `{
	"endpoint": "https://push.example.com/abc",
	"expirationTime": null,
	"keys": {"auth": "auth-key", "p256dh": "p256dh-key"}
}`

// authedServices returns services whose token parser accepts any cookie as
// the session of account 5.
func authedServices(subs service.SubscriptionService) *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(context.Context, string) (models.SessionClaims, error) {
				return models.SessionClaims{AccountID: 5, EmailAddress: "jane@example.com"}, nil
			},
		},
		SubscriptionService: subs,
	}
}

func TestSubscriptions_Success(t *testing.T) {
	subs := &mockSubscriptionService{
		registerSubscriptionFn: func(_ context.Context, accountID int64, sub models.PushSubscription, userAgent string) (int64, error) {
			assert.Equal(t, int64(5), accountID)
			assert.Equal(t, "https://push.example.com/abc", sub.Endpoint)
			assert.Nil(t, sub.ExpirationTime)
			assert.Equal(t, "auth-key", sub.Keys.Auth)
			assert.Equal(t, "Mozilla/5.0 Test", userAgent)
			return 77, nil
		},
	}
	h := newTestHandler(t, authedServices(subs))

	rec := serve(h, http.MethodPost, "/subscriptions", validSubscriptionBody,
		withCookie("any"),
		func(r *http.Request) { r.Header.Set("User-Agent", "Mozilla/5.0 Test") },
	)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.SubscriptionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, models.SubscriptionResponse{Success: true, SubscriptionID: 77}, body)
}

func TestSubscriptions_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			body:       `{"endpoint":`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidJSON,
		},
		{
			name:       "fractional expiration time",
			body:       `{"endpoint":"e","expirationTime":1.5,"keys":{"auth":"a","p256dh":"p"}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidJSON,
		},
		{
			name:       "missing expiration time",
			body:       `{"endpoint":"e","keys":{"auth":"a","p256dh":"p"}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "expirationTime is a required field",
		},
		{
			name:       "missing endpoint",
			body:       `{"expirationTime":null,"keys":{"auth":"a","p256dh":"p"}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "endpoint is a required field",
		},
		{
			name:       "missing p256dh",
			body:       `{"endpoint":"e","expirationTime":null,"keys":{"auth":"a"}}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "keys.p256dh is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := &mockSubscriptionService{
				registerSubscriptionFn: func(context.Context, int64, models.PushSubscription, string) (int64, error) {
					t.Fatal("RegisterSubscription must not be called")
					return 0, nil
				},
			}
			h := newTestHandler(t, authedServices(subs))

			rec := serve(h, http.MethodPost, "/subscriptions", tt.body, withCookie("any"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rec))
		})
	}
}

func TestSubscriptions_RequiresSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{SubscriptionService: &mockSubscriptionService{}})

	rec := serve(h, http.MethodPost, "/subscriptions", validSubscriptionBody)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNotAuthenticated, errorBody(t, rec))
}

func TestSubscriptions_ServiceFailure(t *testing.T) {
	subs := &mockSubscriptionService{
		registerSubscriptionFn: func(context.Context, int64, models.PushSubscription, string) (int64, error) {
			return 0, errors.New("deadlock detected")
		},
	}
	h := newTestHandler(t, authedServices(subs))

	rec := serve(h, http.MethodPost, "/subscriptions", validSubscriptionBody, withCookie("any"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "deadlock detected", errorBody(t, rec))
}
