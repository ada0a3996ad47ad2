// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by the signed session cookie.
//
// It embeds [jwt.RegisteredClaims] for the standard iss/sub/iat/exp claims
// and carries the sanitized user under the "user" claim so that the cookie
// stays self-describing for clients that decode it.
type SessionClaims struct {
	jwt.RegisteredClaims

	// User is the sanitized projection of the authenticated account.
	User PublicUser `json:"user"`
}

// Session is a persisted client-side session: the raw cookie as issued by
// the server together with the user it was decoded into.
type Session struct {
	// Cookie is the "user" cookie exactly as received in Set-Cookie.
	Cookie *http.Cookie

	// User is the sanitized user carried by the cookie.
	User PublicUser

	// ExpiresAt is the expiry claim of the cookie payload.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at moment now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
