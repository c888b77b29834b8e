// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact-book services, handlers and API client.
//
// All Msg* constants are human-readable message strings that are written into
// the "errors" field of HTTP response bodies. Keeping them in one place
// ensures the server and the client agree on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded at all.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongCredentials is returned for both an unknown username and a
	// wrong password, so callers cannot probe which one failed.
	MsgWrongCredentials = "username or password wrong"

	// MsgUnauthorized is returned when the Authorization header is missing
	// or the token does not belong to any user.
	MsgUnauthorized = "unauthorized"

	// MsgUsernameAlreadyExists is returned when registering a taken username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgUserNotFound is returned when the authenticated user row is gone.
	MsgUserNotFound = "user not found"

	// MsgContactNotFound is returned when no contact matches both the id and
	// the authenticated owner.
	MsgContactNotFound = "contact not found"

	// MsgRouteNotFound is returned for unknown paths.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the path exists but the method
	// is not registered for it.
	MsgMethodNotAllowed = "method not allowed"
)
