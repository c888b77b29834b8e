// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/contact-book/internal/validators"
	"github.com/MKhiriev/contact-book/models"
)

const contactIDRules = "required,gt=0"

type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{
		validator: validator,
	}
}

func (v *ContactValidationService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContactResponse{}, err
	}

	return v.inner.Create(ctx, user, req)
}

func (v *ContactValidationService) Get(ctx context.Context, user models.User, id int64) (models.ContactResponse, error) {
	if err := v.validator.ValidateVar(ctx, "id", id, contactIDRules); err != nil {
		return models.ContactResponse{}, err
	}

	return v.inner.Get(ctx, user, id)
}

func (v *ContactValidationService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContactResponse{}, err
	}

	return v.inner.Update(ctx, user, req)
}

func (v *ContactValidationService) Remove(ctx context.Context, user models.User, id int64) error {
	if err := v.validator.ValidateVar(ctx, "id", id, contactIDRules); err != nil {
		return err
	}

	return v.inner.Remove(ctx, user, id)
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}
