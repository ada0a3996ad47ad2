// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users. Results never carry the
// password hash.
type AuthService interface {
	// Signup creates an account. Returns ErrMissingRequiredFields or
	// store.ErrEmailAlreadyExists on failure.
	Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error)

	// Login checks the credentials. Unknown email and wrong password both
	// return ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)
}

// UserService reads and edits user profiles.
type UserService interface {
	// UpdateProfile overwrites username and company. Returns
	// ErrMissingRequiredFields or store.ErrUserNotFound on failure.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.PublicUser, error)

	// GetUser returns the current record of the user with this id.
	GetUser(ctx context.Context, id string) (models.PublicUser, error)
}

// STTService serves the speech-to-text catalog.
type STTService interface {
	Catalog(ctx context.Context) (models.STTCatalog, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}
