// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users and contacts on top of
// database/sql. PostgreSQL (pgx) and SQLite (mattn/go-sqlite3) are supported;
// queries are rendered with squirrel using the placeholder format of the
// active driver.
package store

import "github.com/MKhiriev/contact-book/internal/logger"

// Storages groups the repositories built on a single database connection.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

// NewStorages constructs all repositories backed by db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
