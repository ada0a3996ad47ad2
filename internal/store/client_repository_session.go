// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if session.Cookie == nil {
		return errors.New("session has no cookie")
	}

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("error encoding session user: %w", err)
	}

	query, args, err := buildSaveSessionQuery(session.Cookie.Name, session.Cookie.Value, string(userJSON), session.ExpiresAt, l.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localSessionRepository.SaveSession").Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		name, value, userJSON string
		expiresAt             time.Time
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&name, &value, &userJSON, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var user models.PublicUser
	if err = json.Unmarshal([]byte(userJSON), &user); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session user: %w", err)
	}

	return models.Session{
		Cookie:    &http.Cookie{Name: name, Value: value, Path: "/"},
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.DeleteSession").Msg("failed to delete local session")
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	return nil
}
