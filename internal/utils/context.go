// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server and
// the terminal client: request context keys, JSON responses, the resty
// client wrapper, session token signing and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/propal-dashboard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key the session middleware stores the verified
// session user under.
var SessionUserCtxKey = contextKey("sessionUser")

// WithSessionUser returns a copy of ctx carrying user.
func WithSessionUser(ctx context.Context, user models.PublicUser) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, user)
}

// GetSessionUserFromContext retrieves the verified session user.
// ok is false when no session user was stored or it has an unexpected type.
func GetSessionUserFromContext(ctx context.Context) (models.PublicUser, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.PublicUser)
	return user, ok
}

// GetUserIDFromContext returns the id of the session user stored in ctx.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	user, ok := GetSessionUserFromContext(ctx)
	if !ok || user.ID == "" {
		return "", false
	}
	return user.ID, true
}
