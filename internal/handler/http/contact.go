// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateContactRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("contact_id", contact.ID).Msg("contact created")
	writeData(w, r, contact)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := contactIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), user, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, contact)
}

// updateContact applies a partial patch; the id always comes from the path.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := contactIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateContactRequest
	if err = decodePatchJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.ID = id

	contact, err := h.services.ContactService.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, contact)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	user, err := userFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := contactIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ContactService.Remove(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.ResponseOK)
}
