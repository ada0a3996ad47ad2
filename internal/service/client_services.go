// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	AuthService ClientAuthService
	STTService  ClientSTTService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		STTService:  NewClientSTTService(localStore.PreferencesRepository, serverAdapter, logger),
	}
}
