// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/service"
	"github.com/MKhiriev/contact-book/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces token authentication.
//
// The token is read from the "Authorization" header (raw, or with a "Bearer "
// scheme) and resolved to a user by [service.UserService.Authenticate]. On
// success the user is stored in the request context (see
// [utils.GetUserFromContext]) and the request logger gains a "username"
// field. A missing token is rejected with 401 without calling the service.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := utils.ParseAuthToken(r.Header.Get("Authorization"))
		if token == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		user, err := h.services.UserService.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userLog := log.GetChildLogger()
		userLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", user.Username)
		})

		ctx := utils.WithUser(userLog.WithContext(r.Context()), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
