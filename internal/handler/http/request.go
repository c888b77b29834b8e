// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/contact-book/internal/app"
	"github.com/MKhiriev/contact-book/internal/utils"
	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
	"github.com/go-chi/chi/v5"
)

const contactIDParam = "id"

// decodeJSON decodes the request body into dst. Unknown fields and trailing
// garbage are rejected as a validation failure, and so is a missing body.
func decodeJSON(r *http.Request, dst any) error {
	return decodeBody(r, dst, false)
}

// decodePatchJSON is decodeJSON for partial updates: a missing body is an
// empty patch.
func decodePatchJSON(r *http.Request, dst any) error {
	return decodeBody(r, dst, true)
}

func decodeBody(r *http.Request, dst any, emptyAllowed bool) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if emptyAllowed && errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return validators.NewValidationError("body", "json", fmt.Sprintf("%s: %s", app.MsgInvalidDataProvided, err))
	}
	if decoder.More() {
		return validators.NewValidationError("body", "json", app.MsgInvalidDataProvided+": unexpected data after JSON object")
	}

	return nil
}

// contactIDFromURL parses the {id} path parameter. Range checks are left to
// the service validation.
func contactIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, contactIDParam), 10, 64)
	if err != nil {
		return 0, validators.NewValidationError(contactIDParam, "number", fmt.Sprintf("%q must be a number", contactIDParam))
	}

	return id, nil
}

func userFromRequest(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}

	return user, nil
}
