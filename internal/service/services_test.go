// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/mock"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_ValidationIsOutermost(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:    mock.NewMockUserRepository(ctrl),
		ContactRepository: mock.NewMockContactRepository(ctrl),
	}

	services := NewServices(storages, config.App{}, models.NewAppBuildInfo("v1.0.0", "", ""), logger.Nop())
	require.NotNil(t, services)

	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.IsType(t, &ContactValidationService{}, services.ContactService)

	// rejected before touching the repository mocks, which have no expectations
	_, err := services.UserService.Get(context.Background(), "")
	_, ok := validators.AsValidationError(err)
	assert.True(t, ok)
}

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.0.0", "2026-10-16", ""), logger.Nop())

	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, models.BuildInfoResponse{Version: "v1.0.0", Date: "2026-10-16", Commit: "N/A"}, info)
}
