// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request payloads before they reach the
// service layer.
//
// Rules live in `validate` struct tags on the models; failures are reported
// as a single *ValidationError naming the offending JSON field.
package validators

import "context"

// Validator validates a request payload, optionally restricted to the
// named struct fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
