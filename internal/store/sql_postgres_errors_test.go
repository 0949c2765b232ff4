// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorHelpers(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantState     string
		wantUnique    bool
		wantTransient bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), wantState: "23505", wantUnique: true},
		{name: "wrapped unique violation", err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.UniqueViolation)), wantState: "23505", wantUnique: true},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), wantState: "08006", wantTransient: true},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), wantState: "40001", wantTransient: true},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), wantState: "40P01", wantTransient: true},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), wantState: "57P03", wantTransient: true},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), wantState: "42601"},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), wantState: "23503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantState, sqlState(tt.err))
			assert.Equal(t, tt.wantUnique, isUniqueViolation(tt.err))
			assert.Equal(t, tt.wantTransient, isTransient(tt.err))
		})
	}
}
