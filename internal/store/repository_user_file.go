// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
)

// userFileRepository implements [UserRepository] on top of a
// [UserFileStorage]. Every read-modify-write cycle runs under mu, so two
// concurrent signups or profile updates in one process never lose each
// other's writes. Several processes sharing one file are not supported.
type userFileRepository struct {
	mu      sync.Mutex
	storage UserFileStorage
	logger  *logger.Logger
}

// NewUserFileRepository returns a [UserRepository] that persists users
// through storage.
func NewUserFileRepository(storage UserFileStorage, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("file UserRepository created")
	return &userFileRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *userFileRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.storage.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error loading users file")
		return models.User{}, fmt.Errorf("error loading users: %w", err)
	}

	for _, u := range users {
		if u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	users = append(users, user)
	if err = r.storage.WriteAll(ctx, users); err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error writing users file")
		return models.User{}, fmt.Errorf("error saving users: %w", err)
	}

	return user, nil
}

func (r *userFileRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *userFileRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *userFileRepository) find(ctx context.Context, match func(models.User) bool) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.storage.ReadAll(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("error reading users: %w", err)
	}

	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *userFileRepository) UpdateProfile(ctx context.Context, id, username, company string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.storage.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.UpdateProfile").Msg("error loading users file")
		return models.User{}, fmt.Errorf("error loading users: %w", err)
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	users[idx].Username = username
	users[idx].Company = company

	if err = r.storage.WriteAll(ctx, users); err != nil {
		log.Err(err).Str("func", "*userFileRepository.UpdateProfile").Msg("error writing users file")
		return models.User{}, fmt.Errorf("error saving users: %w", err)
	}

	return users[idx], nil
}

// Ping fails when the users file exists but cannot be decoded.
func (r *userFileRepository) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.storage.Load(ctx)
	return err
}
