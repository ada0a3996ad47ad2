// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
)

// userFileStorage keeps the users collection as a single JSON array on disk,
// indented with two spaces.
type userFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewUserFileStorage returns a [UserFileStorage] backed by the file at path.
// The file and its directory are created on the first write.
func NewUserFileStorage(path string, logger *logger.Logger) UserFileStorage {
	return &userFileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *userFileStorage) ReadAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("users file could not be read, treating it as empty")
		return []models.User{}, nil
	}

	return users, nil
}

func (s *userFileStorage) Load(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading users file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.User{}, nil
	}

	var users []models.User
	if err = json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedUsersFile, err)
	}
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// WriteAll writes to a temporary file in the same directory and renames it
// over the target, so readers observe either the old or the new document.
func (s *userFileStorage) WriteAll(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if users == nil {
		users = []models.User{}
	}

	payload, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding users: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating users file dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("error creating temp users file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp users file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp users file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp users file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("error replacing users file: %w", err)
	}

	return nil
}
