// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/session"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu      sync.RWMutex
	session *http.Cookie

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)
	// the session cookie is managed explicitly, not by resty's jar
	client.SetCookieJar(nil)

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

// SetSession implements [ServerAdapter].
func (h *httpServerAdapter) SetSession(cookie *http.Cookie) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = cookie
}

// Session implements [ServerAdapter].
func (h *httpServerAdapter) Session() *http.Cookie {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// Signup implements [ServerAdapter]. It POSTs to /api/auth/signup and
// returns the created user. Any cookie in the answer is ignored so a signup
// never logs the client in.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

// Login implements [ServerAdapter]. It POSTs to /api/auth/login and stores
// the "user" cookie from the answer.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, *http.Cookie, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.PublicUser{}, nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, nil, err
	}

	cookie, err := sessionCookie(resp)
	if err != nil {
		return models.PublicUser{}, nil, err
	}

	h.SetSession(cookie)
	return result.User, cookie, nil
}

// Logout implements [ServerAdapter]. It POSTs to /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetSession(nil)

	resp, err := h.sessionRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateProfile implements [ServerAdapter]. It PUTs to /api/user/update and
// stores the refreshed cookie.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.PublicUser, *http.Cookie, error) {
	var result models.UserResponse

	resp, err := h.sessionRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Put("/api/user/update")
	if err != nil {
		return models.PublicUser{}, nil, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, nil, err
	}

	cookie, err := sessionCookie(resp)
	if err != nil {
		return models.PublicUser{}, nil, err
	}

	h.SetSession(cookie)
	return result.User, cookie, nil
}

// Me implements [ServerAdapter]. It GETs /api/user/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	var result models.UserResponse

	resp, err := h.sessionRequest(ctx).
		SetResult(&result).
		Get("/api/user/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

// STTCatalog implements [ServerAdapter]. It GETs /api/stt/config.
func (h *httpServerAdapter) STTCatalog(ctx context.Context) (models.STTCatalog, error) {
	var catalog models.STTCatalog

	resp, err := h.sessionRequest(ctx).
		SetResult(&catalog).
		Get("/api/stt/config")
	if err != nil {
		return models.STTCatalog{}, fmt.Errorf("stt catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.STTCatalog{}, err
	}

	return catalog, nil
}

// Version implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var result models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Version, nil
}

func (h *httpServerAdapter) sessionRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cookie := h.Session(); cookie != nil {
		req.SetCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	return req
}

func sessionCookie(resp *resty.Response) (*http.Cookie, error) {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c, nil
		}
	}
	return nil, ErrNoSessionCookie
}
