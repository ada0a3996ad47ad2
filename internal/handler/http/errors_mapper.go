// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/internal/session"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{service.ErrMissingRequiredFields, http.StatusBadRequest, msgMissingRequiredFields},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
	{session.ErrSessionExpired, http.StatusUnauthorized, msgSessionExpired},
	{session.ErrInvalidSession, http.StatusUnauthorized, msgUnauthorized},
	{session.ErrNoSession, http.StatusUnauthorized, msgUnauthorized},
	{service.ErrAccessDenied, http.StatusForbidden, msgForbidden},
	{store.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, msgUserExists},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, msgServiceUnavailable},
}

// mapError returns the status and the client-facing message for err.
// Unknown errors are 500 with a generic message.
func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternalServerError
}

// writeError answers with the mapped status and {message}. Server-side
// failures are logged; client errors only at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
