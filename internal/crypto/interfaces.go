// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_service_mock.go -package=mock

// CredentialService owns the credential primitives of the account store.
// It knows nothing about the network or the database.
//
// Registration:
//
//	hash = HashPassword(password)
//	code = GenerateVerificationCode()          stored as raw bytes
//	wire = EncodeVerificationCode(code)        sent in the verification link
//
// Verification:
//
//	code = DecodeVerificationCode(wire)
type CredentialService interface {
	// HashPassword returns the salted bcrypt hash of password.
	HashPassword(password string) (string, error)

	// ComparePassword reports whether password matches hash. An empty hash
	// is compared against a fixed dummy hash, so a missing account costs
	// the same bcrypt work as a wrong password, and never matches.
	ComparePassword(hash, password string) bool

	// GenerateVerificationCode returns VerificationCodeSize bytes read from
	// the OS CSPRNG.
	GenerateVerificationCode() ([]byte, error)

	// EncodeVerificationCode converts raw code bytes into their transport form.
	EncodeVerificationCode(code []byte) string

	// DecodeVerificationCode converts a transport form back into raw bytes.
	// Returns ErrMalformedVerificationCode when the input cannot be decoded.
	DecodeVerificationCode(encoded string) ([]byte, error)
}
