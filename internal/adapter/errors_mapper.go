// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/contact-book/internal/app"
	"github.com/MKhiriev/contact-book/internal/service"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/models"
	"github.com/go-resty/resty/v2"
)

// knownErrors maps the "errors" message of a response back to the sentinel
// the server answered with.
var knownErrors = map[string]error{
	app.MsgWrongCredentials:      service.ErrWrongCredentials,
	app.MsgUnauthorized:          service.ErrUnauthorized,
	app.MsgUsernameAlreadyExists: store.ErrUsernameAlreadyExists,
	app.MsgUserNotFound:          store.ErrUserNotFound,
	app.MsgContactNotFound:       store.ErrContactNotFound,
}

func mapHTTPError(resp *resty.Response, apiErr *models.ErrorResponse) error {
	if resp.IsSuccess() {
		return nil
	}

	message := ""
	if apiErr != nil {
		message = strings.TrimSpace(apiErr.Errors)
	}
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}

	if known, ok := knownErrors[message]; ok {
		return known
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
