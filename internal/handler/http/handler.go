// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"html/template"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Issuer
	pages    *template.Template

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Issuer, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		pages:          parsePages(),
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
