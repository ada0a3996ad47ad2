// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the session cookie of the terminal client
// between runs. At most one session is stored.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// LocalPreferencesRepository keeps speech-to-text selections per user id.
type LocalPreferencesRepository interface {
	SavePreferences(ctx context.Context, userID string, selection models.STTSelection) error
	LoadPreferences(ctx context.Context, userID string) (models.STTSelection, error)
}
