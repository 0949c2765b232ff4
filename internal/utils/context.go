// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, session token generation and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/pro-directory/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the account identifier of an
// authenticated request in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the account ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// SessionCtxKey is the key used to store the decoded session of an
// authenticated request.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session and its account id.
func WithSession(ctx context.Context, session models.AccountSession) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, session.ID)
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by WithSession.
func GetSessionFromContext(ctx context.Context) (models.AccountSession, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.AccountSession)
	return session, ok
}
