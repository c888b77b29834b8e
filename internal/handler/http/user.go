// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user registered")
	writeData(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.UserService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("username", req.Username).Msg("user logged in")
	writeData(w, r, token)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.UserService.Get(r.Context(), user.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, resp)
}

// updateUser changes the name and/or password of the authenticated user.
// A username in the body is ignored.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodePatchJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Username = user.Username

	resp, err := h.services.UserService.Update(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.UserService.Logout(r.Context(), user.Username); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.ResponseOK)
}
