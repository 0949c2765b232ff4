// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup and verification
// against the "accounts" table.
//
// Email addresses are always compared case-insensitively.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount checks for an existing account and inserts the new one
// inside a single transaction.
//
// Error handling:
//   - existing email, or unique_violation (23505) raised by a concurrent
//     insert → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var existingID int64
		err := tx.QueryRowContext(ctx, findAccountIDByEmail, account.EmailAddress).Scan(&existingID)
		switch {
		case err == nil:
			return ErrEmailAlreadyRegistered
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		err = tx.QueryRowContext(ctx, createAccount,
			account.EmailAddress,
			account.PasswordHash,
			account.VerificationCode,
		).Scan(&account.ID, &account.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyRegistered
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			log.Info().Str("func", "*accountRepository.CreateAccount").Msg("email address is already registered")
			return models.Account{}, err
		}

		log.Err(err).
			Str("func", "*accountRepository.CreateAccount").
			Bool("transient", isTransient(err)).
			Msg("error creating account")
		return models.Account{}, err
	}

	return account, nil
}

// FindAccountByEmail retrieves the account whose email address matches.
//
// Error handling:
//   - no rows → [ErrAccountNotFound].
//   - Any other error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.QueryRowContext(ctx, findAccountByEmail, email).
		Scan(&found.ID, &found.EmailAddress, &found.PasswordHash, &found.Verified, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).
			Str("func", "*accountRepository.FindAccountByEmail").
			Bool("transient", isTransient(err)).
			Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// VerifyAccount marks the account as verified in one atomic statement. The
// NOT verified predicate makes the code single-use.
func (r *accountRepository) VerifyAccount(ctx context.Context, email string, code []byte) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, verifyAccount, email, code).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrVerificationNotPending
		}

		log.Err(err).
			Str("func", "*accountRepository.VerifyAccount").
			Bool("transient", isTransient(err)).
			Msg("error verifying account")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*accountRepository.VerifyAccount").Int64("account_id", id).Msg("account verified")
	return id, nil
}
