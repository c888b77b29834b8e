// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/contact-book/models"
)

var (
	userColumns    = []string{"username", "password", "name", "token"}
	contactColumns = []string{"id", "username", "first_name", "last_name", "phone", "email"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password", "name").
		Values(user.Username, user.Password, user.Name)
}

func (db *DB) selectUserQuery() sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName())
}

// updateUserQuery sets only the fields present in update.
func (db *DB) updateUserQuery(update models.UserUpdate) sq.UpdateBuilder {
	query := db.builder.Update(models.User{}.TableName())

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.PasswordHash != nil {
		query = query.Set("password", *update.PasswordHash)
	}

	return query.
		Where(sq.Eq{"username": update.Username}).
		Suffix(returning(userColumns))
}

func (db *DB) setTokenQuery(username string, token *string) sq.UpdateBuilder {
	return db.builder.
		Update(models.User{}.TableName()).
		Set("token", token).
		Where(sq.Eq{"username": username})
}

func (db *DB) insertContactQuery(contact models.Contact) sq.InsertBuilder {
	return db.builder.
		Insert(contact.TableName()).
		Columns("username", "first_name", "last_name", "phone", "email").
		Values(contact.Username, contact.FirstName, contact.LastName, contact.Phone, contact.Email).
		Suffix("RETURNING id")
}

func (db *DB) selectContactQuery(username string, id int64) sq.SelectBuilder {
	return db.builder.
		Select(contactColumns...).
		From(models.Contact{}.TableName()).
		Where("id = ? AND username = ?", id, username)
}

// updateContactQuery sets only the fields present in update and scopes the
// statement to the owner, so a foreign contact id matches no row.
func (db *DB) updateContactQuery(update models.ContactUpdate) sq.UpdateBuilder {
	query := db.builder.Update(models.Contact{}.TableName())

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.Phone != nil {
		query = query.Set("phone", *update.Phone)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}

	return query.
		Where("id = ? AND username = ?", update.ID, update.Username).
		Suffix(returning(contactColumns))
}

func (db *DB) deleteContactQuery(username string, id int64) sq.DeleteBuilder {
	return db.builder.
		Delete(models.Contact{}.TableName()).
		Where("id = ? AND username = ?", id, username)
}
