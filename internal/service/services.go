// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the use cases of the contact book. Core services
// talk to the store; validation is layered on top as a decorator.
package service

import (
	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	tokenService := NewTokenService(cfg, logger)

	return &Services{
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, tokenService, cfg, logger)),
		ContactService: NewContactValidationService(validator).
			Wrap(NewContactService(storages.ContactRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
