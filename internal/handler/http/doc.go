// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the contact book.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging and token authentication are handled in this package before
// requests are delegated to the service layer. Every response body is JSON:
// successful calls are wrapped in {"data": ...}, failures in {"errors": ...}.
package http
