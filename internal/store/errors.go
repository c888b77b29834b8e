// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/MKhiriev/contact-book/internal/app"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a new user collides with an
	// existing username.
	ErrUsernameAlreadyExists = errors.New(app.MsgUsernameAlreadyExists)

	// ErrUserNotFound is returned when no user matches the given username
	// or token.
	ErrUserNotFound = errors.New(app.MsgUserNotFound)

	// ErrContactNotFound is returned when no contact matches the given id
	// within the owner's contacts. Contacts of other users are reported the
	// same way.
	ErrContactNotFound = errors.New(app.MsgContactNotFound)
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) without result rows fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown
	// database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
