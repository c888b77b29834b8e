// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"data": "OK"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestParseAuthToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "tokenTest", want: "tokenTest"},
		{header: "  tokenTest  ", want: "tokenTest"},
		{header: "Bearer tokenTest", want: "tokenTest"},
		{header: "bearer tokenTest", want: "tokenTest"},
		{header: "Bearer ", want: ""},
		{header: "bearer", want: ""},
		{header: "Bearer    tokenTest", want: "tokenTest"},
		{header: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := ParseAuthToken(tt.header); got != tt.want {
				t.Errorf("ParseAuthToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
