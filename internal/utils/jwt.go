// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs an HMAC-SHA256 JWT carrying user.
//
// The token includes the standard claims iss, sub (the user id), iat and
// exp (now plus duration) next to the sanitized user under "user".
// issuer, duration, signKey and user.ID are all required.
func GenerateSessionToken(issuer string, user models.PublicUser, now time.Time, duration time.Duration, signKey string) (string, models.SessionClaims, error) {
	if issuer == "" || duration == 0 || signKey == "" || user.ID == "" {
		return "", models.SessionClaims{}, errors.New("invalid params for generating session token")
	}

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", models.SessionClaims{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, claims, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and returns its claims. The subject must match the embedded
// user id. Expiry failures wrap [jwt.ErrTokenExpired].
func ValidateAndParseSessionToken(tokenString, signKey, issuer string, now time.Time) (models.SessionClaims, error) {
	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.Subject == "" || claims.Subject != claims.User.ID {
		return models.SessionClaims{}, errors.New("session token subject does not match its user")
	}

	return claims, nil
}

// ParseSessionTokenUnverified decodes the claims of tokenString without
// checking the signature. The terminal client uses it to render the session
// user; the server never trusts its result.
func ParseSessionTokenUnverified(tokenString string) (models.SessionClaims, error) {
	var claims models.SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.SessionClaims{}, fmt.Errorf("error decoding session token: %w", err)
	}

	if claims.User.ID == "" {
		return models.SessionClaims{}, errors.New("session token carries no user")
	}

	return claims, nil
}
