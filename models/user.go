// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account row of the "users" table.
// Sensitive fields must never leave the service layer; handlers only ever
// serialize [UserResponse] or [TokenResponse].
type User struct {
	// Username is the unique login of the user and the primary key.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	Password string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Token is the session credential issued at login and cleared at logout.
	// A nil Token means the user is logged out.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a typed patch for a user row.
// Only non-nil fields are written.
type UserUpdate struct {
	// Username identifies the row to update. Required.
	Username string

	// Name is the new display name. If nil, the field will not be updated.
	Name *string

	// PasswordHash is the new bcrypt hash. If nil, the field will not be updated.
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.PasswordHash == nil
}

// RegisterUserRequest is the body of POST /api/users/register.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest is the body of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is the body of PATCH /api/users/update.
// Username is always overwritten with the authenticated user.
type UpdateUserRequest struct {
	Username string  `json:"username" validate:"required,max=100"`
	Name     *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,max=100"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// NewUserResponse projects u onto its public fields.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}

// TokenResponse carries the token issued by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
