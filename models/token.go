// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a signed session token.
//
// The subject ("sub") carries the username and the "jti" claim is unique per
// login, so two consecutive logins never produce the same token.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Username returns the owner of the token taken from the "sub" claim.
func (c *TokenClaims) Username() string {
	return c.Subject
}
