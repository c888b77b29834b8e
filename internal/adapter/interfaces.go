// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed Go client for the contact-book REST API.
//
// [ServerAdapter] hides the wire format: requests and responses are the
// models used by the server, the {"data": ...} envelope is unwrapped, and
// {"errors": ...} bodies are mapped back to the sentinel errors of the store
// and service packages so callers can use [errors.Is] on both sides of the
// wire.
package adapter

import (
	"context"

	"github.com/MKhiriev/contact-book/models"
)

// ServerAdapter defines communication with the contact-book server.
// Implementations are safe for concurrent use.
type ServerAdapter interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" when logged out.
	Token() string

	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)

	CurrentUser(ctx context.Context) (models.UserResponse, error)

	// UpdateUser changes the name and/or password of the logged-in user.
	// req.Username is ignored by the server.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout revokes the session on the server and clears the stored token.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, req models.CreateContactRequest) (models.ContactResponse, error)
	GetContact(ctx context.Context, id int64) (models.ContactResponse, error)

	// UpdateContact sends a partial patch for contact req.ID.
	UpdateContact(ctx context.Context, req models.UpdateContactRequest) (models.ContactResponse, error)
	RemoveContact(ctx context.Context, id int64) error

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.BuildInfoResponse, error)
}
