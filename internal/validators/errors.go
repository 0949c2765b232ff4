// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError describes the first rule a request violated. Message is
// safe to return to the client.
type ValidationError struct {
	// Field is the JSON path of the offending field, e.g. "keys.auth".
	Field string
	// Tag is the violated rule.
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
