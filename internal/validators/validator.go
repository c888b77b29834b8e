// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator is the go-playground/validator backed implementation of
// [Validator]. Field names in violations are the JSON names of the fields.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [Validator] that reports every violation
// (no early abort) and names fields after their `json` tag.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: validate}
}

// Validate implements [Validator].
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	if err := v.validate.StructCtx(ctx, obj); err != nil {
		return toValidationError(err, "")
	}

	return nil
}

// ValidateVar implements [Validator].
func (v *RequestValidator) ValidateVar(ctx context.Context, field string, value any, tag string) error {
	if err := v.validate.VarCtx(ctx, value, tag); err != nil {
		return toValidationError(err, field)
	}

	return nil
}

func toValidationError(err error, field string) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	result := &ValidationError{Violations: make([]Violation, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		name := fe.Field()
		if name == "" {
			name = field
		}

		result.Violations = append(result.Violations, Violation{
			Field:   name,
			Tag:     fe.Tag(),
			Message: violationMessage(name, fe),
		})
	}

	return result
}

func violationMessage(field string, fe validator.FieldError) string {
	quoted := fmt.Sprintf("%q", field)

	switch fe.Tag() {
	case "required":
		return quoted + " is required"
	case "email":
		return quoted + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s length must be less than or equal to %s characters long", quoted, fe.Param())
	case "min":
		if fe.Param() == "1" {
			return quoted + " is not allowed to be empty"
		}
		return fmt.Sprintf("%s length must be at least %s characters long", quoted, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return quoted + " must be a positive number"
		}
		return fmt.Sprintf("%s must be greater than %s", quoted, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the %q rule", quoted, fe.Tag())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStruct(obj any) bool {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Struct
}
