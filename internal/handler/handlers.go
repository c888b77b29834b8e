// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the application.
package handler

import (
	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/handler/http"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
