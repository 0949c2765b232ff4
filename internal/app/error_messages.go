// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// directory HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP response bodies. Keeping them in one place keeps the
// wording of the API consistent.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request is missing required
	// data that validation did not describe more precisely.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyRegistered is returned by POST /register for a taken
	// email address.
	MsgEmailAlreadyRegistered = "Email address is already registered"

	// MsgInvalidUsernameOrPassword is returned by POST /login for an unknown
	// account and for a wrong password alike.
	MsgInvalidUsernameOrPassword = "Invalid username or password"

	// MsgInvalidEmailOrCode is returned by GET /verify.
	MsgInvalidEmailOrCode = "Invalid email address or code"

	// MsgInvalidProfile is returned when a profile id is not an integer.
	MsgInvalidProfile = "Invalid profile"

	MsgProfileNotFound = "Profile not found"

	// MsgNotAuthenticated is returned when the session cookie is missing.
	MsgNotAuthenticated = "not authenticated"

	// MsgInvalidToken is returned when the session token cannot be verified.
	MsgInvalidToken = "invalid authentication token"

	// MsgInvalidTokenData is returned when a verified token carries no usable
	// session payload.
	MsgInvalidTokenData = "invalid authentication token data"
)
