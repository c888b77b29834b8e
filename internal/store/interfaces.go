// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their session token.
type UserRepository interface {
	// CreateUser inserts a new user. Returns [ErrUsernameAlreadyExists] when
	// the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByToken returns the user whose stored token equals token, or
	// [ErrUserNotFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	// UpdateUser applies the fields present in update and returns the
	// resulting row. An empty update returns the current row.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// SetToken stores token for username; a nil token clears it.
	SetToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts. Every method is scoped to the owner
// username so that one user can never read or change another user's contacts.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, username string, id int64) (models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, username string, id int64) error
}
