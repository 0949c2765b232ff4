// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/pro-directory/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks decoded request bodies and query parameters
// against their `validate` struct tags. Errors name fields by their JSON
// names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(pushSubscriptionPresence, models.PushSubscription{})

	return &RequestValidator{validate: v}
}

// Validate returns the first violation as a *ValidationError. When fields
// are given only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return newValidationError(validationErrors[0])
	}
	return err
}

// pushSubscriptionPresence requires the expirationTime key to be present
// in the payload; null counts as present.
func pushSubscriptionPresence(sl validator.StructLevel) {
	sub, ok := sl.Current().Interface().(models.PushSubscription)
	if !ok || sub.HasExpirationTime() {
		return
	}
	sl.ReportError(sub.ExpirationTime, "expirationTime", "ExpirationTime", "required", "")
}

func newValidationError(fe validator.FieldError) *ValidationError {
	field := fieldPath(fe)
	return &ValidationError{
		Field:   field,
		Tag:     fe.Tag(),
		Message: message(field, fe),
	}
}

// fieldPath drops the root struct name from the namespace:
// "PushSubscription.keys.auth" becomes "keys.auth".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is a required field"
	case "email":
		return field + " must be a valid email"
	case "len":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must have exactly %s items", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (failed on '%s' rule)", field, fe.Tag())
	}
}
