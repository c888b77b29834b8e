// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
)

// contactRepository is the SQL implementation of [ContactRepository] over
// the "contacts" table. Every statement filters on both id and username.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&contact.LastName,
		&contact.Phone,
		&contact.Email,
	)
	return contact, err
}

// CreateContact inserts contact and returns it with the generated ID.
// A contact for a username that does not exist yields [ErrUserNotFound].
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.insertContactQuery(contact).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.QueryRowContext(ctx, query, args...).Scan(&contact.ID); err != nil {
		if isForeignKeyViolation(err) {
			return models.Contact{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "*contactRepository.CreateContact").
			Str("username", contact.Username).
			Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// FindContact returns the contact id owned by username, or
// [ErrContactNotFound].
func (c *contactRepository) FindContact(ctx context.Context, username string, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.selectContactQuery(username, id).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.FindContact").
			Str("username", username).
			Int64("contact_id", id).
			Msg("error selecting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// UpdateContact applies the fields present in update with a single
// owner-scoped UPDATE ... RETURNING statement. An empty update returns the
// current row.
func (c *contactRepository) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	if update.IsEmpty() {
		return c.FindContact(ctx, update.Username, update.ID)
	}

	log := logger.FromContext(ctx)

	query, args, err := c.updateContactQuery(update).ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(c.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UpdateContact").
			Str("username", update.Username).
			Int64("contact_id", update.ID).
			Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

// DeleteContact removes the contact id owned by username. Returns
// [ErrContactNotFound] when nothing was deleted.
func (c *contactRepository) DeleteContact(ctx context.Context, username string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := c.deleteContactQuery(username, id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.DeleteContact").
			Str("username", username).
			Int64("contact_id", id).
			Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}
