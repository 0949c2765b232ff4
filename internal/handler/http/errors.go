// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptySessionCookie is returned by the auth middleware when the
	// request carries no "accessToken" cookie.
	ErrEmptySessionCookie = errors.New("empty session cookie")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidProfileID is returned when the {id} path segment of
	// GET /profiles/{id} is not an integer.
	ErrInvalidProfileID = errors.New("invalid profile id")

	// ErrNoSessionInContext is returned when a protected handler runs without
	// the auth middleware.
	ErrNoSessionInContext = errors.New("no session in request context")
)
