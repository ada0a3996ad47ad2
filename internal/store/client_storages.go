// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
)

// ClientStorages groups the repositories of the terminal client local store.
type ClientStorages struct {
	SessionRepository     LocalSessionRepository
	PreferencesRepository LocalPreferencesRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, migrates it
// and wires the client repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:     NewLocalSessionRepository(db, logger),
		PreferencesRepository: NewLocalPreferencesRepository(db, logger),
		db:                    db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
