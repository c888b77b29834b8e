// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/contact-book/internal/app"
)

var (
	// ErrWrongCredentials is returned by login for an unknown username and
	// for a wrong password alike.
	ErrWrongCredentials = errors.New(app.MsgWrongCredentials)

	// ErrUnauthorized is returned when a session token is missing, invalid
	// or matches no user.
	ErrUnauthorized = errors.New(app.MsgUnauthorized)

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrHashingPassword     = errors.New("error hashing password")
)
