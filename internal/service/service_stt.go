// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/models"
)

type sttService struct {
	catalog store.STTCatalogStorage
}

func NewSTTService(catalog store.STTCatalogStorage) STTService {
	return &sttService{catalog: catalog}
}

func (s *sttService) Catalog(ctx context.Context) (models.STTCatalog, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return models.STTCatalog{}, fmt.Errorf("error loading stt catalog: %w", err)
	}
	return catalog, nil
}
