// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown email address
	// and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email address or password")

	// ErrInvalidVerification is returned when a verification code is
	// malformed, does not match, or was already used.
	ErrInvalidVerification = errors.New("invalid verification code")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokenIsInvalid        = errors.New("invalid authentication token")
	ErrTokenPayloadIsInvalid = errors.New("invalid authentication token data")
)
