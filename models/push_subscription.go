// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PushSubscription is a browser Web Push subscription as produced by
// PushSubscription.toJSON() on the client.
type PushSubscription struct {
	Endpoint string `json:"endpoint" validate:"required"`

	// ExpirationTime must be present in the payload; it may be null,
	// otherwise it is a positive integer.
	ExpirationTime *int64 `json:"expirationTime" validate:"omitempty,gt=0"`

	Keys PushSubscriptionKeys `json:"keys"`

	expirationTimeSet bool
}

// PushSubscriptionKeys is the key pair of a push subscription.
type PushSubscriptionKeys struct {
	Auth   string `json:"auth" validate:"required"`
	P256dh string `json:"p256dh" validate:"required"`
}

// HasExpirationTime reports whether the expirationTime key was present in
// the decoded payload (null counts as present).
func (s PushSubscription) HasExpirationTime() bool {
	return s.expirationTimeSet || s.ExpirationTime != nil
}

// UnmarshalJSON decodes the subscription and records whether
// expirationTime was supplied.
func (s *PushSubscription) UnmarshalJSON(b []byte) error {
	type alias PushSubscription
	aux := struct {
		*alias
		ExpirationTime json.RawMessage `json:"expirationTime"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	s.ExpirationTime = nil
	s.expirationTimeSet = len(aux.ExpirationTime) > 0
	if !s.expirationTimeSet || bytes.Equal(aux.ExpirationTime, []byte("null")) {
		return nil
	}

	var expirationTime int64
	if err := json.Unmarshal(aux.ExpirationTime, &expirationTime); err != nil {
		return fmt.Errorf("expirationTime must be an integer: %w", err)
	}
	s.ExpirationTime = &expirationTime

	return nil
}

// SubscriptionResponse is returned by POST /subscriptions.
type SubscriptionResponse struct {
	Success        bool  `json:"success"`
	SubscriptionID int64 `json:"subscriptionId"`
}
