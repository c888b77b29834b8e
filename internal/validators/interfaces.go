// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: validates request structures through their `validate`
//     struct tags and single values through an explicit tag.
//   - ValidationError: aggregates every violation found in one input so the
//     client sees all problems at once, not just the first.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable and testable validation strategies.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a validation interface for request models and scalar
// inputs.
type Validator interface {
	// Validate validates a struct (or pointer to struct) using its
	// `validate` tags. It returns a *ValidationError on rule violations.
	Validate(ctx context.Context, obj any) error

	// ValidateVar validates a single value against tag. field is the name
	// reported in the error message.
	ValidateVar(ctx context.Context, field string, value any, tag string) error
}
