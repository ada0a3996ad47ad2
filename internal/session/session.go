// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session issues and verifies the signed "user" cookie that carries
// the authenticated user between requests.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "user"

var (
	ErrNoSession      = errors.New("no session cookie")
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
)

// Issuer creates, revokes and verifies session cookies.
type Issuer struct {
	signKey  string
	issuer   string
	duration time.Duration
	secure   bool
	now      func() time.Time
}

// NewIssuer builds an Issuer from the app configuration. Cookies are marked
// Secure only in the production environment.
func NewIssuer(cfg config.App) *Issuer {
	return &Issuer{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		secure:   cfg.IsProduction(),
		now:      time.Now,
	}
}

// Issue returns a fresh session cookie for user.
func (i *Issuer) Issue(user models.PublicUser) (*http.Cookie, error) {
	token, claims, err := utils.GenerateSessionToken(i.issuer, user, i.now(), i.duration, i.signKey)
	if err != nil {
		return nil, fmt.Errorf("error issuing session: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(i.duration.Seconds()),
		Expires:  claims.ExpiresAt.Time,
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Revoke returns a cookie that makes the client drop its session.
func (i *Issuer) Revoke() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Verify checks signature, issuer and expiry of a cookie value and returns
// the user it carries.
func (i *Issuer) Verify(value string) (models.PublicUser, error) {
	if value == "" {
		return models.PublicUser{}, ErrNoSession
	}

	claims, err := utils.ValidateAndParseSessionToken(value, i.signKey, i.issuer, i.now())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return claims.User, nil
}

// FromRequest verifies the session cookie of r.
func (i *Issuer) FromRequest(r *http.Request) (models.PublicUser, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.PublicUser{}, ErrNoSession
	}

	return i.Verify(cookie.Value)
}
