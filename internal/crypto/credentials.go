// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// VerificationCodeSize is the number of random bytes in a verification code.
const VerificationCodeSize = 64

// ErrMalformedVerificationCode is returned when a transport-encoded
// verification code cannot be decoded.
var ErrMalformedVerificationCode = errors.New("malformed verification code")

// credentialService is the bcrypt-backed implementation of [CredentialService].
type credentialService struct {
	cost      int
	dummyHash []byte
}

// NewCredentialService constructs a [CredentialService] that hashes passwords
// with the given bcrypt cost. Costs below bcrypt.DefaultCost are raised to it.
func NewCredentialService(cost int) (CredentialService, error) {
	if cost < bcrypt.DefaultCost {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy hash: %w", err)
	}

	return &credentialService{
		cost:      cost,
		dummyHash: dummyHash,
	}, nil
}

func (c *credentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (c *credentialService) ComparePassword(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(password))
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (c *credentialService) GenerateVerificationCode() ([]byte, error) {
	code := make([]byte, VerificationCodeSize)
	if _, err := io.ReadFull(rand.Reader, code); err != nil {
		return nil, fmt.Errorf("error generating verification code: %w", err)
	}

	return code, nil
}

func (c *credentialService) EncodeVerificationCode(code []byte) string {
	return base64.StdEncoding.EncodeToString(code)
}

func (c *credentialService) DecodeVerificationCode(encoded string) ([]byte, error) {
	code, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(code) == 0 {
		return nil, ErrMalformedVerificationCode
	}

	return code, nil
}
