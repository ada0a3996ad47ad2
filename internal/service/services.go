// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
)

// Services groups the server-side business services.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	STTService     STTService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, logger)),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		STTService:     NewSTTService(storages.STTCatalog),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages.UserRepository),
	}, nil
}
