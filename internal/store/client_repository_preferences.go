// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
)

type localPreferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalPreferencesRepository(db *DB, logger *logger.Logger) LocalPreferencesRepository {
	return &localPreferencesRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localPreferencesRepository) SavePreferences(ctx context.Context, userID string, selection models.STTSelection) error {
	query, args, err := buildSavePreferencesQuery(userID, selection, l.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPreferencesRepository.SavePreferences").
			Str("user_id", userID).
			Msg("failed to save stt preferences")
		return fmt.Errorf("failed to save stt preferences: %w", err)
	}

	return nil
}

func (l *localPreferencesRepository) LoadPreferences(ctx context.Context, userID string) (models.STTSelection, error) {
	query, args, err := buildLoadPreferencesQuery(userID)
	if err != nil {
		return models.STTSelection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sel models.STTSelection
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&sel.Provider, &sel.Model, &sel.Language)
	if errors.Is(err, sql.ErrNoRows) {
		return models.STTSelection{}, ErrPreferencesNotFound
	}
	if err != nil {
		return models.STTSelection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sel, nil
}
