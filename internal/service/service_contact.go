// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/store"
	"github.com/MKhiriev/contact-book/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	logger            *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

// Create stores a new contact owned by user.
func (c *contactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	contact, err := c.contactRepository.CreateContact(ctx, models.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("contact creation failed")
		return models.ContactResponse{}, fmt.Errorf("contact creation failed: %w", err)
	}

	return models.NewContactResponse(contact), nil
}

// Get returns contact id of user, or store.ErrContactNotFound.
func (c *contactService) Get(ctx context.Context, user models.User, id int64) (models.ContactResponse, error) {
	contact, err := c.contactRepository.FindContact(ctx, user.Username, id)
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("contact search failed: %w", err)
	}

	return models.NewContactResponse(contact), nil
}

// Update applies the fields present in req to contact req.ID of user.
func (c *contactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	contact, err := c.contactRepository.UpdateContact(ctx, models.ContactUpdate{
		ID:        req.ID,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("contact update failed: %w", err)
	}

	return models.NewContactResponse(contact), nil
}

// Remove deletes contact id of user.
func (c *contactService) Remove(ctx context.Context, user models.User, id int64) error {
	if err := c.contactRepository.DeleteContact(ctx, user.Username, id); err != nil {
		return fmt.Errorf("contact removal failed: %w", err)
	}

	return nil
}
