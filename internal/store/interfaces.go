// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the keyed user store the credential services work with.
// Email is the unique key; id is the immutable primary key.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with exactly this email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with this id or ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateProfile atomically overwrites username and company of the user
	// with this id and returns the updated record, or ErrUserNotFound.
	UpdateProfile(ctx context.Context, id, username, company string) (models.User, error)

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}

// UserFileStorage reads and writes the whole users collection as one JSON
// document.
type UserFileStorage interface {
	// ReadAll returns the stored collection. A missing, unreadable or
	// malformed file yields an empty collection and no error.
	ReadAll(ctx context.Context) ([]models.User, error)

	// Load is the strict variant of ReadAll: a missing file is an empty
	// collection, a malformed file is ErrMalformedUsersFile.
	Load(ctx context.Context) ([]models.User, error)

	// WriteAll replaces the stored collection.
	WriteAll(ctx context.Context, users []models.User) error
}

// STTCatalogStorage provides the speech-to-text catalog.
type STTCatalogStorage interface {
	Catalog(ctx context.Context) (models.STTCatalog, error)
}
