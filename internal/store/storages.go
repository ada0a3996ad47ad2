// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
)

// Storages groups the server-side storage backends.
type Storages struct {
	UserRepository UserRepository
	STTCatalog     STTCatalogStorage

	db *DB
}

// NewStorages wires the user repository and the STT catalog.
//
// With a database DSN configured users live in PostgreSQL and the schema is
// migrated on start; otherwise they live in the JSON file at
// cfg.Files.UsersFile.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating storages...")

	catalog, err := NewSTTCatalogStorage(cfg.Files.STTCatalog)
	if err != nil {
		return nil, fmt.Errorf("stt catalog: %w", err)
	}

	if cfg.DB.DSN == "" {
		logger.Info().Str("path", cfg.Files.UsersFile).Msg("using users file storage")
		return &Storages{
			UserRepository: NewUserFileRepository(NewUserFileStorage(cfg.Files.UsersFile, logger), logger),
			STTCatalog:     catalog,
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Msg("using postgres storage")
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		STTCatalog:     catalog,
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
