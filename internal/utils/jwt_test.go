// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

const testSignKey = "secret-key"

func signMapClaims(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(123, "jane@example.com", testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.AccountID != 123 {
		t.Errorf("expected id 123, got %d", token.Claims.AccountID)
	}
	if token.Claims.ExpiresAt != nil {
		t.Error("session tokens must not carry exp")
	}
	if token.Claims.IssuedAt == nil {
		t.Error("expected iat to be set")
	}
}

func TestGenerateJWTToken_EmptyKey(t *testing.T) {
	_, err := GenerateJWTToken(1, "jane@example.com", "")
	if err == nil {
		t.Error("expected error for empty sign key, got nil")
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(77, "jane@example.com", testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.AccountID != 77 {
		t.Errorf("expected id 77, got %d", parsed.Claims.AccountID)
	}
	if parsed.Claims.EmailAddress != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %s", parsed.Claims.EmailAddress)
	}
	if parsed.Claims.IssuedAt == nil {
		t.Error("expected iat to survive parsing")
	}
}

func TestValidateAndParseJWTToken_MissingEmailIsAllowed(t *testing.T) {
	raw := signMapClaims(t, jwt.SigningMethodHS256, jwt.MapClaims{"id": 5}, []byte(testSignKey))

	parsed, err := ValidateAndParseJWTToken(raw, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.AccountID != 5 || parsed.Claims.EmailAddress != "" {
		t.Errorf("unexpected claims: %+v", parsed.Claims)
	}
}

func TestValidateAndParseJWTToken_InvalidToken(t *testing.T) {
	valid, err := GenerateJWTToken(1, "jane@example.com", testSignKey)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"wrong key", signMapClaims(t, jwt.SigningMethodHS256, jwt.MapClaims{"id": 1}, []byte("other-key"))},
		{"unexpected algorithm", signMapClaims(t, jwt.SigningMethodHS512, jwt.MapClaims{"id": 1}, []byte(testSignKey))},
		{"tampered signature", valid.SignedString + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, testSignKey)
			if !errors.Is(err, ErrInvalidJWTToken) {
				t.Errorf("expected ErrInvalidJWTToken, got: %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_InvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing id", jwt.MapClaims{"emailAddress": "jane@example.com"}},
		{"string id", jwt.MapClaims{"id": "5"}},
		{"fractional id", jwt.MapClaims{"id": 1.5}},
		{"non-string email", jwt.MapClaims{"id": 5, "emailAddress": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := signMapClaims(t, jwt.SigningMethodHS256, tt.claims, []byte(testSignKey))

			_, err := ValidateAndParseJWTToken(raw, testSignKey)
			if !errors.Is(err, ErrInvalidJWTPayload) {
				t.Errorf("expected ErrInvalidJWTPayload, got: %v", err)
			}
		})
	}
}
