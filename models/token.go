// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of a session token. The token has no
// expiration; it binds an account id to the email address it was issued for.
type SessionClaims struct {
	AccountID    int64  `json:"id"`
	EmailAddress string `json:"emailAddress"`

	jwt.RegisteredClaims
}

// Session returns the public view of the claims.
func (c SessionClaims) Session() AccountSession {
	return AccountSession{ID: c.AccountID, EmailAddress: c.EmailAddress}
}

// Token wraps a signed session token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded session payload.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
