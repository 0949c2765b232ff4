// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pro-directory/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTToken is returned when the token is malformed, signed with
	// another key or with an unexpected algorithm.
	ErrInvalidJWTToken = errors.New("invalid JWT token")

	// ErrInvalidJWTPayload is returned when a correctly signed token does not
	// carry a session payload.
	ErrInvalidJWTPayload = errors.New("invalid JWT token payload")
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The payload carries the account id ("id"), its email address
// ("emailAddress") and the issue time ("iat"). Session tokens do not expire.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(42, "jane@example.com", "secret")
func GenerateJWTToken(accountID int64, emailAddress, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.SessionClaims{
		AccountID:    accountID,
		EmailAddress: emailAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature of tokenString and decodes
// its session payload.
//
// Only HS256 is accepted. The payload is read from raw claims: "id" must be
// an integral number and "emailAddress", when present, must be a string.
//
// Returns an error wrapping ErrInvalidJWTToken or ErrInvalidJWTPayload.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithJSONNumber(),
	)

	token, err := parser.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidJWTToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Token{}, ErrInvalidJWTPayload
	}

	claims, err := sessionClaims(mapClaims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

func sessionClaims(mapClaims jwt.MapClaims) (models.SessionClaims, error) {
	var claims models.SessionClaims

	rawID, ok := mapClaims["id"].(json.Number)
	if !ok {
		return claims, fmt.Errorf("%w: id is missing or not a number", ErrInvalidJWTPayload)
	}
	id, err := rawID.Int64()
	if err != nil {
		return claims, fmt.Errorf("%w: id is not an integer", ErrInvalidJWTPayload)
	}
	claims.AccountID = id

	if rawEmail, present := mapClaims["emailAddress"]; present {
		email, ok := rawEmail.(string)
		if !ok {
			return claims, fmt.Errorf("%w: emailAddress is not a string", ErrInvalidJWTPayload)
		}
		claims.EmailAddress = email
	}

	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}
