// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService drives the credential endpoints from the terminal client
// and keeps the session cookie in the local store.
type ClientAuthService interface {
	// Signup creates an account on the server. No session is started.
	Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error)

	// Login authenticates against the server and persists the issued session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout revokes the session on the server and always removes the local
	// copy. The returned error reports a failed revoke only.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted session. An expired or garbled
	// session is removed and ErrNotLoggedIn is returned.
	RestoreSession(ctx context.Context) (models.Session, error)

	// UpdateProfile saves the profile on the server and persists the
	// refreshed session.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Session, error)

	// CurrentUser fetches the user of the current session from the server.
	CurrentUser(ctx context.Context) (models.PublicUser, error)

	// SaveSession persists session as the current one.
	SaveSession(ctx context.Context, session models.Session) error
}

// ClientSTTService provides the catalog and the saved STT selection of a user.
type ClientSTTService interface {
	Catalog(ctx context.Context) (models.STTCatalog, error)

	// LoadPreferences returns the saved selection, or an empty one.
	LoadPreferences(ctx context.Context, userID string) (models.STTSelection, error)

	// SavePreferences stores a complete selection that exists in catalog.
	SavePreferences(ctx context.Context, userID string, catalog models.STTCatalog, selection models.STTSelection) error
}
