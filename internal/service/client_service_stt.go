// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/models"
)

type clientSTTService struct {
	preferences store.LocalPreferencesRepository
	adapter     adapter.ServerAdapter
	logger      *logger.Logger
}

func NewClientSTTService(preferences store.LocalPreferencesRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSTTService {
	return &clientSTTService{
		preferences: preferences,
		adapter:     serverAdapter,
		logger:      logger,
	}
}

func (s *clientSTTService) Catalog(ctx context.Context) (models.STTCatalog, error) {
	catalog, err := s.adapter.STTCatalog(ctx)
	if err != nil {
		return models.STTCatalog{}, fmt.Errorf("fetch stt catalog: %w", err)
	}
	return catalog, nil
}

func (s *clientSTTService) LoadPreferences(ctx context.Context, userID string) (models.STTSelection, error) {
	selection, err := s.preferences.LoadPreferences(ctx, userID)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return models.STTSelection{}, nil
	}
	if err != nil {
		return models.STTSelection{}, fmt.Errorf("load stt preferences: %w", err)
	}
	return selection, nil
}

func (s *clientSTTService) SavePreferences(ctx context.Context, userID string, catalog models.STTCatalog, selection models.STTSelection) error {
	if userID == "" {
		return ErrNotLoggedIn
	}
	if !selection.Complete() {
		return ErrIncompleteSelection
	}

	view := catalog.Describe(selection)
	if view.Provider == "" || view.Model == "" || view.Language == "" {
		return ErrInvalidSTTSelection
	}

	if err := s.preferences.SavePreferences(ctx, userID, selection); err != nil {
		return fmt.Errorf("save stt preferences: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("provider", selection.Provider).
		Str("model", selection.Model).
		Str("language", selection.Language).
		Msg("stt preferences saved")
	return nil
}
