// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/contact-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper,ContactServiceWrapper

// UserService implements the user use cases: registration, login, profile
// read and update, logout, and token authentication.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)
	Get(ctx context.Context, username string) (models.UserResponse, error)
	Update(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)
	Logout(ctx context.Context, username string) (models.UserResponse, error)

	// Authenticate resolves a session token to its user or fails with
	// [ErrUnauthorized].
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// ContactService implements contact CRUD on behalf of an authenticated user.
// The owner of every contact is always taken from user.
type ContactService interface {
	Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, id int64) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	Remove(ctx context.Context, user models.User, id int64) error
}

// TokenService issues and pre-verifies session tokens.
type TokenService interface {
	// Issue returns a new token for username. Two calls never return the
	// same token.
	Issue(ctx context.Context, username string) (string, error)
	// Verify checks the token itself (format, signature, expiry) before it
	// is looked up in storage.
	Verify(ctx context.Context, token string) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ContactServiceWrapper defines middleware composition for ContactService.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
