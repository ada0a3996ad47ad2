// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/propal-dashboard/models"
)

//go:embed stt.json
var defaultSTTCatalog []byte

// ErrEmptySTTCatalog is returned when a catalog document lists no providers.
var ErrEmptySTTCatalog = errors.New("stt catalog has no providers")

type sttCatalogStorage struct {
	catalog models.STTCatalog
}

// NewSTTCatalogStorage loads the catalog from path, or the embedded default
// when path is empty. The catalog is read once; a broken override file is a
// startup error rather than a silent fallback.
func NewSTTCatalogStorage(path string) (STTCatalogStorage, error) {
	raw := defaultSTTCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading stt catalog: %w", err)
		}
		raw = data
	}

	catalog, err := decodeSTTCatalog(raw)
	if err != nil {
		return nil, err
	}

	return &sttCatalogStorage{catalog: catalog}, nil
}

func decodeSTTCatalog(raw []byte) (models.STTCatalog, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var catalog models.STTCatalog
	if err := dec.Decode(&catalog); err != nil {
		return models.STTCatalog{}, fmt.Errorf("error decoding stt catalog: %w", err)
	}
	if len(catalog.Providers) == 0 {
		return models.STTCatalog{}, ErrEmptySTTCatalog
	}

	return catalog, nil
}

func (s *sttCatalogStorage) Catalog(ctx context.Context) (models.STTCatalog, error) {
	if err := ctx.Err(); err != nil {
		return models.STTCatalog{}, err
	}
	return s.catalog, nil
}
