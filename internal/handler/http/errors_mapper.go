// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/service"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/internal/utils"
	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
)

var errorStatusMap = map[error]int{
	service.ErrWrongCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:     http.StatusUnauthorized,
	ErrNoUserInContext:          http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrContactNotFound:       http.StatusNotFound,
}

// statusFromError resolves the HTTP status and the client-facing message for
// err. Known sentinels answer with their own message, so wrapping context
// added on the way up never leaks to the client.
func statusFromError(err error) (int, string) {
	if validationErr, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest, validationErr.Error()
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}

	return http.StatusInternalServerError, err.Error()
}

// writeError writes err as {"errors": "..."} with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Errors: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

func writeData[T any](w http.ResponseWriter, r *http.Request, data T) {
	if _, err := utils.WriteJSON(w, models.DataResponse[T]{Data: data}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
