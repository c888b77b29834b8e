// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// Violation describes a single failed rule.
type Violation struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`
	// Tag is the validation rule that failed (e.g. "required", "max").
	Tag string `json:"tag"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// ValidationError aggregates all violations found in one input.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError with a single violation.
// It is used by transport code for failures that happen before a request
// model exists (malformed JSON, non-numeric path parameters).
func NewValidationError(field, tag, message string) *ValidationError {
	return &ValidationError{
		Violations: []Violation{{Field: field, Tag: tag, Message: message}},
	}
}

// Error joins every violation message, in field order.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}

	return strings.Join(messages, ". ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}
