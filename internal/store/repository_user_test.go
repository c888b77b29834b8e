// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

var userRowColumns = []string{"username", "password", "name", "token"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "patrick", Password: "hash", Name: "patrick star"}

	mock.ExpectExec(`INSERT INTO users \(username,password,name\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs("patrick", "hash", "patrick star").
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user, created)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "patrick"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "patrick"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "hash", "patrick star", "tokenTest")
	mock.ExpectQuery(`SELECT username, password, name, token FROM users WHERE username = \$1`).
		WithArgs("patrick").
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername(context.Background(), "patrick")
	require.NoError(t, err)
	assert.Equal(t, "patrick", user.Username)
	assert.Equal(t, "hash", user.Password)
	require.NotNil(t, user.Token)
	assert.Equal(t, "tokenTest", *user.Token)
}

func TestFindUserByUsername_NullToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "hash", "patrick star", nil)
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	user, err := repo.FindUserByUsername(context.Background(), "patrick")
	require.NoError(t, err)
	assert.Nil(t, user.Token)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByUsername(context.Background(), "patrick")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "hash", "patrick star", "tokenTest")
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE token = \$1`).
		WithArgs("tokenTest").
		WillReturnRows(rows)

	user, err := repo.FindUserByToken(context.Background(), "tokenTest")
	require.NoError(t, err)
	assert.Equal(t, "patrick", user.Username)
}

func TestFindUserByToken_EmptyTokenNeverMatches(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.FindUserByToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_NameOnly(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "hash", "patrick updated", "tokenTest")
	mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE username = \$2 RETURNING username, password, name, token`).
		WithArgs("patrick updated", "patrick").
		WillReturnRows(rows)

	user, err := repo.UpdateUser(context.Background(), models.UserUpdate{
		Username: "patrick",
		Name:     strPtr("patrick updated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "patrick updated", user.Name)
	assert.Equal(t, "hash", user.Password)
}

func TestUpdateUser_NameAndPassword(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "new-hash", "patrick updated", nil)
	mock.ExpectQuery(`UPDATE users SET name = \$1, password = \$2 WHERE username = \$3`).
		WithArgs("patrick updated", "new-hash", "patrick").
		WillReturnRows(rows)

	user, err := repo.UpdateUser(context.Background(), models.UserUpdate{
		Username:     "patrick",
		Name:         strPtr("patrick updated"),
		PasswordHash: strPtr("new-hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.Password)
}

func TestUpdateUser_EmptyPatchReadsCurrentRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).AddRow("patrick", "hash", "patrick star", nil)
	mock.ExpectQuery("SELECT (.+) FROM users").WithArgs("patrick").WillReturnRows(rows)

	user, err := repo.UpdateUser(context.Background(), models.UserUpdate{Username: "patrick"})
	require.NoError(t, err)
	assert.Equal(t, "patrick star", user.Name)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{Username: "nobody", Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(`UPDATE users SET token = \$1 WHERE username = \$2`).
		WithArgs("tokenTest", "patrick").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetToken(context.Background(), "patrick", strPtr("tokenTest")))
}

func TestSetToken_ClearsWithNil(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET token").
		WithArgs(nil, "patrick").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetToken(context.Background(), "patrick", nil))
}

func TestSetToken_UnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetToken(context.Background(), "nobody", strPtr("tokenTest"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
