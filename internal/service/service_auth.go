// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; ids are UUIDv7.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service performs no input validation; wrap it with
// [NewAuthValidationService] for that.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Signup hashes the password, assigns an id and a creation time and stores
// the user. The returned projection includes the phone number.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.PublicUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    a.now().UTC(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		}
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created.Public(), nil
}

// Login returns the stored user when the password matches. For an unknown
// email a comparison against a dummy hash still runs so both failures take
// about the same time.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.BurnPasswordCheck(req.Password)
		log.Debug().Str("func", "*authService.Login").Msg("login for unknown email")
		return models.PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.PublicUser{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(found.PasswordHash, req.Password) {
		log.Debug().Str("func", "*authService.Login").Str("user_id", found.ID).Msg("wrong password")
		return models.PublicUser{}, ErrInvalidCredentials
	}

	return found.Public(), nil
}
