// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// userService is the concrete implementation of UserService.
// Passwords are stored as bcrypt hashes; session tokens come from a
// TokenService and are persisted on the user row.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService issues and pre-verifies session tokens.
	tokenService TokenService

	// passwordHashCost is the bcrypt cost used for new hashes.
	passwordHashCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewUserService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) UserService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository:   userRepository,
		tokenService:     tokenService,
		passwordHashCost: cost,
		logger:           logger,
	}
}

// Register creates a new user account with a bcrypt-hashed password.
//
// Returns store.ErrUsernameAlreadyExists if the username is taken, either
// found by the pre-check or reported by the unique constraint when two
// registrations race.
func (u *userService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	_, err := u.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return models.UserResponse{}, store.ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := u.hashPassword(req.Password)
	if err != nil {
		return models.UserResponse{}, err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.NewUserResponse(created), nil
}

// Login verifies the credentials and stores a freshly issued token on the
// user row, replacing any previous one.
//
// An unknown username and a wrong password both yield ErrWrongCredentials.
func (u *userService) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.TokenResponse{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.TokenResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Debug().Str("username", req.Username).Msg("wrong password")
		return models.TokenResponse{}, ErrWrongCredentials
	}

	token, err := u.tokenService.Issue(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("token issuing failed")
		return models.TokenResponse{}, err
	}

	if err = u.userRepository.SetToken(ctx, user.Username, &token); err != nil {
		log.Err(err).Str("username", user.Username).Msg("storing token failed")
		return models.TokenResponse{}, fmt.Errorf("storing token failed: %w", err)
	}

	return models.TokenResponse{Token: token}, nil
}

// Get returns the public projection of username, or store.ErrUserNotFound.
func (u *userService) Get(ctx context.Context, username string) (models.UserResponse, error) {
	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return models.NewUserResponse(user), nil
}

// Update applies the name and password present in req; a new password is
// re-hashed. Fields absent from req keep their stored value.
func (u *userService) Update(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		Username: req.Username,
		Name:     req.Name,
	}

	if req.Password != nil {
		hash, err := u.hashPassword(*req.Password)
		if err != nil {
			return models.UserResponse{}, err
		}
		update.PasswordHash = &hash
	}

	user, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user update failed")
		return models.UserResponse{}, fmt.Errorf("user update failed: %w", err)
	}

	return models.NewUserResponse(user), nil
}

// Logout clears the stored token of username, which revokes the session.
func (u *userService) Logout(ctx context.Context, username string) (models.UserResponse, error) {
	if err := u.userRepository.SetToken(ctx, username, nil); err != nil {
		return models.UserResponse{}, fmt.Errorf("clearing token failed: %w", err)
	}

	return models.UserResponse{Username: username}, nil
}

// Authenticate verifies token and resolves it to the user holding it.
// Every failure except a storage error is reported as ErrUnauthorized.
func (u *userService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	if err := u.tokenService.Verify(ctx, token); err != nil {
		return models.User{}, ErrUnauthorized
	}

	user, err := u.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}

// hashPassword rejects passwords bcrypt cannot hash (over 72 bytes) as a
// validation failure.
func (u *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", validators.NewValidationError("password", "max",
			fmt.Sprintf("%q length must be less than or equal to %d bytes long", "password", maxPasswordBytes))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(hash), nil
}
