// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the propal-dashboard server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401), while the
// error text stays the server's own message.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
// The adapter holds the "user" session cookie: it captures it from Set-Cookie
// on login and profile update and sends it back on every request.
type ServerAdapter interface {
	// SetSession stores the cookie sent with subsequent requests. A nil cookie
	// clears the session.
	SetSession(cookie *http.Cookie)

	// Session returns the stored cookie or nil.
	Session() *http.Cookie

	// Signup creates an account. The server does not start a session for it.
	Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error)

	// Login authenticates and stores the issued session cookie.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, *http.Cookie, error)

	// Logout asks the server to revoke the session. The stored cookie is
	// dropped whatever the outcome.
	Logout(ctx context.Context) error

	// UpdateProfile saves username and company and stores the refreshed cookie.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.PublicUser, *http.Cookie, error)

	// Me returns the user of the current session.
	Me(ctx context.Context) (models.PublicUser, error)

	// STTCatalog fetches the speech-to-text catalog.
	STTCatalog(ctx context.Context) (models.STTCatalog, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
