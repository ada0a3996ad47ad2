// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

var testUser = models.PublicUser{ID: "0192f5a4-aaaa-7bbb-8ccc-123456789abc", Username: "alice", Email: "alice@example.com"}

func TestGenerateSessionToken_Success(t *testing.T) {
	now := time.Now()

	token, claims, err := GenerateSessionToken("test-issuer", testUser, now, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != testUser.ID {
		t.Errorf("expected subject %s, got %s", testUser.ID, claims.Subject)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(time.Hour).Truncate(time.Second)) {
		t.Errorf("unexpected expiry %v", claims.ExpiresAt.Time)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.PublicUser
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser, time.Hour, "key"},
		{"zero duration", "iss", testUser, 0, "key"},
		{"empty key", "iss", testUser, time.Hour, ""},
		{"no user id", "iss", models.PublicUser{Username: "x"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GenerateSessionToken(tt.issuer, tt.user, time.Now(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	now := time.Now()
	token, _, _ := GenerateSessionToken("test-issuer", testUser, now, 5*time.Minute, "secret-key")

	claims, err := ValidateAndParseSessionToken(token, "secret-key", "test-issuer", now)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if claims.User != testUser {
		t.Errorf("expected user %+v, got %+v", testUser, claims.User)
	}
}

func TestValidateAndParseSessionToken_InvalidKey(t *testing.T) {
	now := time.Now()
	token, _, _ := GenerateSessionToken("test-issuer", testUser, now, time.Hour, "correct-key")

	if _, err := ValidateAndParseSessionToken(token, "wrong-key", "test-issuer", now); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token, _, _ := GenerateSessionToken("test-issuer", testUser, issued, time.Hour, "key")

	_, err := ValidateAndParseSessionToken(token, "key", "test-issuer", time.Now())
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	now := time.Now()
	token, _, _ := GenerateSessionToken("real-issuer", testUser, now, time.Hour, "key")

	if _, err := ValidateAndParseSessionToken(token, "key", "fake-issuer", now); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseSessionToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseSessionToken("not.a.token", "key", "iss", time.Now()); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseSessionToken_SubjectMismatch(t *testing.T) {
	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "someone-else",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		User: testUser,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = ValidateAndParseSessionToken(token, "key", "iss", now); err == nil {
		t.Error("expected error for subject mismatch, got nil")
	}
}

func TestParseSessionTokenUnverified(t *testing.T) {
	token, _, _ := GenerateSessionToken("iss", testUser, time.Now(), time.Hour, "server-only-key")

	claims, err := ParseSessionTokenUnverified(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.User.Email != testUser.Email {
		t.Errorf("expected email %s, got %s", testUser.Email, claims.User.Email)
	}
}

func TestParseSessionTokenUnverified_Garbage(t *testing.T) {
	if _, err := ParseSessionTokenUnverified("garbage"); err == nil {
		t.Error("expected error for garbage token, got nil")
	}
}
