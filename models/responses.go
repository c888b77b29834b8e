// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResponseOK is the payload of endpoints that only report success
// (logout, contact removal).
const ResponseOK = "OK"

// DataResponse is the envelope of every successful API response.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse is the envelope of every failed API response.
// Errors is a human-readable description and is never empty.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
