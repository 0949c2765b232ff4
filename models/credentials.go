// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Registration is the body of POST /register.
type Registration struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// Credentials converts the registration payload into login credentials.
func (r Registration) Credentials() Credentials {
	return Credentials{EmailAddress: r.EmailAddress, Password: r.Password}
}

// Credentials is the body of POST /login.
type Credentials struct {
	EmailAddress string `json:"emailAddress" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// Verification carries the query parameters of GET /verify. Code is the
// base64 transport form of the verification code.
type Verification struct {
	EmailAddress string `json:"emailAddress" validate:"required"`
	Code         string `json:"code" validate:"required"`
}
