// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the contact-book server settings.
//
// Environment variables are read first, then command-line flags, then the
// JSON file named by CONFIG or -c; each later source overrides the non-zero
// fields of the earlier ones. Defaults (pgx driver, bcrypt cost 10, 30s
// request timeout) fill what is still empty and the result is validated
// before [GetStructuredConfig] returns it.
package config
