// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/crypto"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/mailer"
	"github.com/MKhiriev/pro-directory/internal/store"
	"github.com/MKhiriev/pro-directory/internal/utils"
	"github.com/MKhiriev/pro-directory/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential checks, email verification and the
// session token lifecycle.
type authService struct {
	// accountRepository is the data-access layer for accounts.
	accountRepository store.AccountRepository

	// credentials hashes passwords and produces verification codes.
	credentials crypto.CredentialService

	// mailQueue receives verification emails. Delivery is asynchronous.
	mailQueue MailQueue

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// verifyURL is the endpoint embedded in verification links.
	verifyURL string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	accountRepository store.AccountRepository,
	credentials crypto.CredentialService,
	mailQueue MailQueue,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		accountRepository: accountRepository,
		credentials:       credentials,
		mailQueue:         mailQueue,
		tokenSignKey:      cfg.TokenSignKey,
		verifyURL:         cfg.VerifyURL,
		logger:            logger,
	}
}

// RegisterUser creates an unverified account and schedules the verification
// email.
//
// Returns the new account id with the verification code in transport form or:
//   - ErrInvalidDataProvided if the email address or password is empty.
//   - A wrapped store.ErrEmailAlreadyRegistered if the email address is taken.
//
// A failure to enqueue the email is logged and does not fail registration.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.RegisteredAccount, error) {
	log := logger.FromContext(ctx)

	if credentials.EmailAddress == "" || credentials.Password == "" {
		log.Error().Str("email_address", credentials.EmailAddress).Msg("invalid registration data provided")
		return models.RegisteredAccount{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.credentials.HashPassword(credentials.Password)
	if err != nil {
		return models.RegisteredAccount{}, fmt.Errorf("password hashing failed: %w", err)
	}

	code, err := a.credentials.GenerateVerificationCode()
	if err != nil {
		return models.RegisteredAccount{}, fmt.Errorf("verification code generation failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		EmailAddress:     credentials.EmailAddress,
		PasswordHash:     passwordHash,
		VerificationCode: code,
	})
	if err != nil {
		log.Err(err).Str("email_address", credentials.EmailAddress).Msg("account creation ended with error")
		return models.RegisteredAccount{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	registered := models.RegisteredAccount{
		ID:               account.ID,
		EmailAddress:     account.EmailAddress,
		VerificationCode: a.credentials.EncodeVerificationCode(code),
	}

	msg := mailer.NewVerificationMessage(a.verifyURL, registered.EmailAddress, registered.VerificationCode)
	if err = a.mailQueue.Enqueue(msg); err != nil {
		log.Warn().Err(err).Int64("account_id", registered.ID).Msg("verification email was not queued")
	}

	return registered, nil
}

// Login authenticates an account by email address and password.
//
// Unknown accounts and wrong passwords both return ErrInvalidCredentials and
// cost one bcrypt comparison.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.EmailAddress == "" || credentials.Password == "" {
		log.Error().Str("email_address", credentials.EmailAddress).Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, credentials.EmailAddress)
	if errors.Is(err, store.ErrAccountNotFound) {
		a.credentials.ComparePassword("", credentials.Password)
		log.Info().Str("email_address", credentials.EmailAddress).Msg("login for unknown account")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !a.credentials.ComparePassword(account.PasswordHash, credentials.Password) {
		log.Info().Int64("account_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// VerifyUser consumes a verification code. A code can be used once.
func (a *authService) VerifyUser(ctx context.Context, verification models.Verification) error {
	log := logger.FromContext(ctx)

	if verification.EmailAddress == "" || verification.Code == "" {
		return ErrInvalidVerification
	}

	code, err := a.credentials.DecodeVerificationCode(verification.Code)
	if err != nil {
		log.Info().Err(err).Str("email_address", verification.EmailAddress).Msg("malformed verification code")
		return ErrInvalidVerification
	}

	accountID, err := a.accountRepository.VerifyAccount(ctx, verification.EmailAddress, code)
	if errors.Is(err, store.ErrVerificationNotPending) {
		log.Info().Str("email_address", verification.EmailAddress).Msg("verification code mismatch")
		return ErrInvalidVerification
	}
	if err != nil {
		return fmt.Errorf("account verification failed: %w", err)
	}

	log.Info().Int64("account_id", accountID).Msg("account verified")
	return nil
}

// CreateToken issues a signed session token for session.
func (a *authService) CreateToken(ctx context.Context, session models.AccountSession) (models.Token, error) {
	token, err := utils.GenerateJWTToken(session.ID, session.EmailAddress, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString and returns its claims.
//
// Signature, format and algorithm failures return ErrTokenIsInvalid; a
// correctly signed token without a usable payload returns
// ErrTokenPayloadIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	switch {
	case errors.Is(err, utils.ErrInvalidJWTPayload):
		return models.SessionClaims{}, ErrTokenPayloadIsInvalid
	case err != nil:
		return models.SessionClaims{}, ErrTokenIsInvalid
	}

	return token.Claims, nil
}
