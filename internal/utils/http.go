// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const bearerScheme = "Bearer"

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// The "Content-Type" header is set to "application/json" before the status
// is written. If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
//	WriteJSON(w, models.DataResponse[string]{Data: "OK"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ParseAuthToken extracts the session token from an Authorization header
// value. The header normally carries the raw token; a "Bearer" scheme is
// accepted and stripped. Returns an empty string when no token is present.
func ParseAuthToken(authorizationHeader string) string {
	token := strings.TrimSpace(authorizationHeader)
	if strings.EqualFold(token, bearerScheme) {
		return ""
	}

	scheme, rest, found := strings.Cut(token, " ")
	if found && strings.EqualFold(scheme, bearerScheme) {
		token = strings.TrimSpace(rest)
	}

	return token
}
