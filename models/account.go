// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the identity record behind a directory profile. It carries the
// credentials used by register/login and the verification state.
// Sensitive fields are never serialized.
type Account struct {
	// ID is the unique identifier of the account.
	ID int64 `json:"id"`

	// EmailAddress is unique across accounts; comparisons are case-insensitive.
	EmailAddress string `json:"emailAddress"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Verified flips from false to true exactly once, after the owner proves
	// control over EmailAddress.
	Verified bool `json:"-"`

	// VerificationCode is the raw single-use code stored at rest.
	VerificationCode []byte `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// RegisteredAccount is the outcome of a successful registration: the new
// account id plus the verification code in its transport (base64) form.
type RegisteredAccount struct {
	ID               int64
	EmailAddress     string
	VerificationCode string
}

// AccountSession is the public view of an authenticated session returned by
// register, login and cookieLogin.
type AccountSession struct {
	ID           int64  `json:"id"`
	EmailAddress string `json:"emailAddress"`
}
