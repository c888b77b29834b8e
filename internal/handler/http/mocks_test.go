// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/contact-book/internal/config"
	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/internal/service"
	"github.com/MKhiriev/contact-book/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockUserService implements service.UserService. A nil function field
// fails the test when called.
type mockUserService struct {
	t *testing.T

	registerFn     func(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error)
	loginFn        func(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error)
	getFn          func(ctx context.Context, username string) (models.UserResponse, error)
	updateFn       func(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)
	logoutFn       func(ctx context.Context, username string) (models.UserResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	require.NotNil(m.t, m.registerFn, "unexpected call to Register")
	return m.registerFn(ctx, req)
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	require.NotNil(m.t, m.loginFn, "unexpected call to Login")
	return m.loginFn(ctx, req)
}

func (m *mockUserService) Get(ctx context.Context, username string) (models.UserResponse, error) {
	require.NotNil(m.t, m.getFn, "unexpected call to Get")
	return m.getFn(ctx, username)
}

func (m *mockUserService) Update(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	require.NotNil(m.t, m.updateFn, "unexpected call to Update")
	return m.updateFn(ctx, req)
}

func (m *mockUserService) Logout(ctx context.Context, username string) (models.UserResponse, error) {
	require.NotNil(m.t, m.logoutFn, "unexpected call to Logout")
	return m.logoutFn(ctx, username)
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (models.User, error) {
	require.NotNil(m.t, m.authenticateFn, "unexpected call to Authenticate")
	return m.authenticateFn(ctx, token)
}

// mockContactService implements service.ContactService.
type mockContactService struct {
	t *testing.T

	createFn func(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error)
	getFn    func(ctx context.Context, user models.User, id int64) (models.ContactResponse, error)
	updateFn func(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error)
	removeFn func(ctx context.Context, user models.User, id int64) error
}

func (m *mockContactService) Create(ctx context.Context, user models.User, req models.CreateContactRequest) (models.ContactResponse, error) {
	require.NotNil(m.t, m.createFn, "unexpected call to Create")
	return m.createFn(ctx, user, req)
}

func (m *mockContactService) Get(ctx context.Context, user models.User, id int64) (models.ContactResponse, error) {
	require.NotNil(m.t, m.getFn, "unexpected call to Get")
	return m.getFn(ctx, user, id)
}

func (m *mockContactService) Update(ctx context.Context, user models.User, req models.UpdateContactRequest) (models.ContactResponse, error) {
	require.NotNil(m.t, m.updateFn, "unexpected call to Update")
	return m.updateFn(ctx, user, req)
}

func (m *mockContactService) Remove(ctx context.Context, user models.User, id int64) error {
	require.NotNil(m.t, m.removeFn, "unexpected call to Remove")
	return m.removeFn(ctx, user, id)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	info models.BuildInfoResponse
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfoResponse {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "tokenTest"

var patrick = models.User{Username: "patrick", Name: "patrick star"}

// authenticatingAs returns an authenticateFn accepting only testToken.
func authenticatingAs(user models.User) func(context.Context, string) (models.User, error) {
	return func(_ context.Context, token string) (models.User, error) {
		if token != testToken {
			return models.User{}, service.ErrUnauthorized
		}
		return user, nil
	}
}

func newTestRouter(t *testing.T, users *mockUserService, contacts *mockContactService) http.Handler {
	t.Helper()
	if users == nil {
		users = &mockUserService{}
	}
	if contacts == nil {
		contacts = &mockContactService{}
	}
	users.t, contacts.t = t, t

	svcs := &service.Services{
		UserService:    users,
		ContactService: contacts,
		AppInfoService: &mockAppInfoService{info: models.BuildInfoResponse{Version: "test", Date: "N/A", Commit: "N/A"}},
	}

	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// do sends a request through handler. An empty token sends no
// Authorization header.
func do(t *testing.T, handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp models.DataResponse[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Data
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Errors
}

func strPtr(s string) *string { return &s }
