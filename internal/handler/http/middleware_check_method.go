// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/contact-book/internal/app"
	"github.com/MKhiriev/contact-book/internal/utils"
	"github.com/MKhiriev/contact-book/models"
	"github.com/go-chi/chi/v5"
)

// routeNotFound answers unknown paths with a JSON 404.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Errors: app.MsgRouteNotFound}, http.StatusNotFound)
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// with a JSON 405 and, for routes without path parameters, lists the
// registered methods in the "Allow" header.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}

			methods := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				methods = append(methods, method)
			}
			sort.Strings(methods)
			w.Header().Set("Allow", strings.Join(methods, ", "))
			break
		}

		utils.WriteJSON(w, models.ErrorResponse{Errors: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}
