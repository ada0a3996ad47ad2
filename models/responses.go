// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every error response and of endpoints
// that only report an outcome (e.g. logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is returned by signup, login, profile update and /api/user/me.
type UserResponse struct {
	Message string     `json:"message,omitempty"`
	User    PublicUser `json:"user"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SignupConfirmation is shown on the login screen after a successful signup.
const SignupConfirmation = "Account created successfully! Please log in."
