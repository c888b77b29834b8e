// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/utils"
)

// NewTokenService returns a JWT token service when cfg.TokenSignKey is set
// and an opaque random token service otherwise.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	if cfg.TokenSignKey != "" {
		logger.Debug().Str("issuer", cfg.TokenIssuer).Msg("using signed JWT session tokens")
		return &jwtTokenService{
			signKey:  cfg.TokenSignKey,
			issuer:   cfg.TokenIssuer,
			duration: cfg.TokenDuration,
		}
	}

	logger.Debug().Msg("using opaque session tokens")
	return &opaqueTokenService{generator: utils.NewUUIDGenerator()}
}

// opaqueTokenService issues random UUIDs. Their only meaning is the row
// they are stored on.
type opaqueTokenService struct {
	generator *utils.UUIDGenerator
}

func (o *opaqueTokenService) Issue(ctx context.Context, username string) (string, error) {
	return o.generator.Generate(), nil
}

func (o *opaqueTokenService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	return nil
}

// jwtTokenService issues HS256 tokens with the username as subject.
type jwtTokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func (j *jwtTokenService) Issue(ctx context.Context, username string) (string, error) {
	token, err := utils.GenerateJWTToken(j.issuer, username, j.duration, j.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify normalises any signature, issuer or expiry failure to
// [ErrUnauthorized].
func (j *jwtTokenService) Verify(ctx context.Context, token string) error {
	if _, err := utils.ValidateAndParseJWTToken(token, j.signKey, j.issuer); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return ErrUnauthorized
	}

	return nil
}
