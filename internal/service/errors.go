// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/propal-dashboard/internal/validators"
)

var (
	// ErrMissingRequiredFields is returned when a required request field is empty.
	ErrMissingRequiredFields = validators.ErrMissingRequiredFields

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied is returned when a session user acts on another account.
	ErrAccessDenied = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage unavailable")

	ErrInvalidSTTSelection = errors.New("stt selection is not in the catalog")
	ErrIncompleteSelection = errors.New("provider, model and language must all be selected")

	ErrNotLoggedIn = errors.New("not logged in")
)
