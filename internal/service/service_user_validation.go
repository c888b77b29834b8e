// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
)

const usernameRules = "required,max=100"

// UserValidationService validates every input before delegating to the
// wrapped UserService. Invalid input never reaches the inner service.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, err
	}

	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TokenResponse{}, err
	}

	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) Get(ctx context.Context, username string) (models.UserResponse, error) {
	if err := v.validator.ValidateVar(ctx, "username", username, usernameRules); err != nil {
		return models.UserResponse{}, err
	}

	return v.inner.Get(ctx, username)
}

func (v *UserValidationService) Update(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.UserResponse{}, err
	}

	return v.inner.Update(ctx, req)
}

func (v *UserValidationService) Logout(ctx context.Context, username string) (models.UserResponse, error) {
	if err := v.validator.ValidateVar(ctx, "username", username, usernameRules); err != nil {
		return models.UserResponse{}, err
	}

	return v.inner.Logout(ctx, username)
}

// Authenticate is passed through; the token itself is checked by the inner
// service.
func (v *UserValidationService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
