// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Response messages of the JSON API.
const (
	msgMissingRequiredFields = "Missing required fields"
	msgInvalidJSON           = "Invalid JSON was passed"
	msgUserExists            = "User already exists"
	msgUserCreated           = "User created successfully"
	msgInvalidCredentials    = "Invalid credentials"
	msgLoggedIn              = "Logged in successfully"
	msgLoggedOut             = "Logged out successfully"
	msgUserNotFound          = "User not found"
	msgProfileUpdated        = "Profile updated successfully"
	msgUnauthorized          = "Unauthorized"
	msgSessionExpired        = "Session expired"
	msgForbidden             = "Forbidden"
	msgServiceUnavailable    = "Service unavailable"
	msgInternalServerError   = "Internal server error"
)
