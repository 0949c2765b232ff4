// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// sqlState returns the SQLSTATE code carried by err, or "" when err did not
// come from the PostgreSQL server.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports whether err is a unique_violation (23505). The
// repositories turn it into a conflict: a duplicate email on accounts.
func isUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

// isTransient reports whether err is a failure that may clear on retry:
// connection exceptions (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40), or cannot_connect_now.
func isTransient(err error) bool {
	code := sqlState(err)
	if code == "" {
		return false
	}
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow
}
