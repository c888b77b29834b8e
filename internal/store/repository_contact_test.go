// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactRowColumns = []string{"id", "username", "first_name", "last_name", "phone", "email"}

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &contactRepository{DB: db, logger: logger.Nop()}, mock
}

func TestCreateContact_Success(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	contact := models.Contact{
		Username:  "patrick",
		FirstName: "spongebob",
		LastName:  strPtr("squarepants"),
	}

	mock.ExpectQuery(`INSERT INTO contacts \(username,first_name,last_name,phone,email\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("patrick", "spongebob", "squarepants", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateContact(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "spongebob", created.FirstName)
	assert.Nil(t, created.Phone)
}

func TestCreateContact_UnknownOwner(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("INSERT INTO contacts").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateContact(context.Background(), models.Contact{Username: "ghost", FirstName: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateContact_DBError(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("INSERT INTO contacts").WillReturnError(errors.New("boom"))

	_, err := repo.CreateContact(context.Background(), models.Contact{Username: "patrick", FirstName: "x"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindContact_Success(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	rows := sqlmock.NewRows(contactRowColumns).
		AddRow(7, "patrick", "spongebob", "squarepants", nil, "spongebob@example.com")
	mock.ExpectQuery(`SELECT id, username, first_name, last_name, phone, email FROM contacts WHERE id = \$1 AND username = \$2`).
		WithArgs(int64(7), "patrick").
		WillReturnRows(rows)

	contact, err := repo.FindContact(context.Background(), "patrick", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), contact.ID)
	assert.Equal(t, "spongebob", contact.FirstName)
	require.NotNil(t, contact.LastName)
	assert.Equal(t, "squarepants", *contact.LastName)
	assert.Nil(t, contact.Phone)
	require.NotNil(t, contact.Email)
}

func TestFindContact_NotFound(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindContact(context.Background(), "patrick", 999)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestUpdateContact_SingleStatement(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	rows := sqlmock.NewRows(contactRowColumns).
		AddRow(7, "patrick", "spongebob", "squarepants", "6212345678901", nil)
	mock.ExpectQuery(`UPDATE contacts SET phone = \$1 WHERE id = \$2 AND username = \$3 RETURNING id, username, first_name, last_name, phone, email`).
		WithArgs("6212345678901", int64(7), "patrick").
		WillReturnRows(rows)

	contact, err := repo.UpdateContact(context.Background(), models.ContactUpdate{
		ID:       7,
		Username: "patrick",
		Phone:    strPtr("6212345678901"),
	})
	require.NoError(t, err)
	require.NotNil(t, contact.Phone)
	assert.Equal(t, "6212345678901", *contact.Phone)
	assert.Equal(t, "squarepants", *contact.LastName)
}

func TestUpdateContact_AllFields(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	rows := sqlmock.NewRows(contactRowColumns).AddRow(7, "patrick", "a", "b", "c", "d@e.com")
	mock.ExpectQuery(`UPDATE contacts SET first_name = \$1, last_name = \$2, phone = \$3, email = \$4 WHERE id = \$5 AND username = \$6`).
		WithArgs("a", "b", "c", "d@e.com", int64(7), "patrick").
		WillReturnRows(rows)

	_, err := repo.UpdateContact(context.Background(), models.ContactUpdate{
		ID:        7,
		Username:  "patrick",
		FirstName: strPtr("a"),
		LastName:  strPtr("b"),
		Phone:     strPtr("c"),
		Email:     strPtr("d@e.com"),
	})
	require.NoError(t, err)
}

func TestUpdateContact_ForeignOrMissing(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectQuery("UPDATE contacts").WillReturnRows(sqlmock.NewRows(contactRowColumns))

	_, err := repo.UpdateContact(context.Background(), models.ContactUpdate{
		ID:        7,
		Username:  "someone-else",
		FirstName: strPtr("x"),
	})
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestUpdateContact_EmptyPatchReadsCurrentRow(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	rows := sqlmock.NewRows(contactRowColumns).AddRow(7, "patrick", "spongebob", nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM contacts").WithArgs(int64(7), "patrick").WillReturnRows(rows)

	contact, err := repo.UpdateContact(context.Background(), models.ContactUpdate{ID: 7, Username: "patrick"})
	require.NoError(t, err)
	assert.Equal(t, "spongebob", contact.FirstName)
}

func TestDeleteContact(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec(`DELETE FROM contacts WHERE id = \$1 AND username = \$2`).
		WithArgs(int64(7), "patrick").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteContact(context.Background(), "patrick", 7))
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteContact(context.Background(), "patrick", 7)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteContact_DBError(t *testing.T) {
	repo, mock := newTestContactRepo(t)

	mock.ExpectExec("DELETE FROM contacts").WillReturnError(errors.New("boom"))

	err := repo.DeleteContact(context.Background(), "patrick", 7)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
