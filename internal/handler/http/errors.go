// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no token at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler was reached without the
	// auth middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
