// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UpdateProfile stores the new username and company. When the context
// carries a session user it must be the user being updated.
func (s *userService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if sessionUserID, ok := utils.GetUserIDFromContext(ctx); ok && sessionUserID != req.UserID {
		log.Warn().Str("session_user_id", sessionUserID).Str("user_id", req.UserID).Msg("profile update for another user")
		return models.PublicUser{}, ErrAccessDenied
	}

	updated, err := s.userRepository.UpdateProfile(ctx, req.UserID, req.Username, req.Company)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*userService.UpdateProfile").Msg("profile update failed")
		}
		return models.PublicUser{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated.Public(), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.PublicUser, error) {
	found, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found.Public(), nil
}
