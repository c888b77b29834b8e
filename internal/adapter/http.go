// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/contact-book/internal/logger"
	"github.com/MKhiriev/contact-book/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config configures the HTTP adapter.
type Config struct {
	// BaseURL is the server address; "host:port" is treated as http://host:port.
	BaseURL string

	// RequestTimeout bounds every request. Zero means 15s.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It returns [ErrInvalidBaseURL] when cfg.BaseURL is empty or unparsable.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterUserRequest) (models.UserResponse, error) {
	return execute[models.UserResponse](h.request(ctx).SetBody(req), http.MethodPost, "/api/users/register")
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginUserRequest) (models.TokenResponse, error) {
	token, err := execute[models.TokenResponse](h.request(ctx).SetBody(req), http.MethodPost, "/api/users/login")
	if err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(token.Token)
	h.logger.Debug().Str("username", req.Username).Msg("logged in")

	return token, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	return execute[models.UserResponse](h.authedRequest(ctx), http.MethodGet, "/api/users/current")
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	return execute[models.UserResponse](h.authedRequest(ctx).SetBody(req), http.MethodPatch, "/api/users/update")
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if _, err := execute[string](h.authedRequest(ctx), http.MethodDelete, "/api/users/logout"); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, req models.CreateContactRequest) (models.ContactResponse, error) {
	return execute[models.ContactResponse](h.authedRequest(ctx).SetBody(req), http.MethodPost, "/api/contacts")
}

func (h *httpServerAdapter) GetContact(ctx context.Context, id int64) (models.ContactResponse, error) {
	return execute[models.ContactResponse](h.authedRequest(ctx), http.MethodGet, contactPath(id))
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, req models.UpdateContactRequest) (models.ContactResponse, error) {
	return execute[models.ContactResponse](h.authedRequest(ctx).SetBody(req), http.MethodPatch, contactPath(req.ID))
}

func (h *httpServerAdapter) RemoveContact(ctx context.Context, id int64) error {
	_, err := execute[string](h.authedRequest(ctx), http.MethodDelete, contactPath(id))
	return err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfoResponse, error) {
	return execute[models.BuildInfoResponse](h.request(ctx), http.MethodGet, "/api/version")
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).SetHeader("Authorization", h.Token())
}

func contactPath(id int64) string {
	return "/api/contacts/" + strconv.FormatInt(id, 10)
}

// execute sends req and unwraps the {"data": ...} envelope.
func execute[T any](req *resty.Request, method, path string) (T, error) {
	var (
		result models.DataResponse[T]
		apiErr models.ErrorResponse
		zero   T
	)

	resp, err := req.
		SetResult(&result).
		SetError(&apiErr).
		Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp, &apiErr); err != nil {
		return zero, err
	}

	return result.Data, nil
}
