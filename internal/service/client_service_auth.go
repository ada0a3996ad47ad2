// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/utils"
	"github.com/MKhiriev/propal-dashboard/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	user, err := a.adapter.Signup(ctx, req)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("signup on server: %w", err)
	}
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	user, cookie, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	session := a.newSession(user, cookie)
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		// the in-memory session still works for this run
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("failed to persist session")
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	revokeErr := a.adapter.Logout(ctx)
	if revokeErr != nil {
		a.logger.Err(revokeErr).Str("func", "*clientAuthService.Logout").Msg("server logout failed")
	}

	if err := a.sessions.DeleteSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("failed to delete local session")
	}

	return revokeErr
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		a.logger.Warn().Err(err).Msg("dropping unreadable local session")
		a.forget(ctx)
		return models.Session{}, ErrNotLoggedIn
	}

	if session.Expired(a.now()) {
		a.logger.Info().Str("user_id", session.User.ID).Msg("local session expired")
		a.forget(ctx)
		return models.Session{}, ErrNotLoggedIn
	}

	a.adapter.SetSession(session.Cookie)
	return session, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Session, error) {
	user, cookie, err := a.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("update profile on server: %w", err)
	}

	session := a.newSession(user, cookie)
	if err = a.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.UpdateProfile").Msg("failed to persist session")
	}

	return session, nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.PublicUser, error) {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("fetch current user: %w", err)
	}
	return user, nil
}

func (a *clientAuthService) SaveSession(ctx context.Context, session models.Session) error {
	if session.Cookie == nil {
		return ErrNotLoggedIn
	}
	a.adapter.SetSession(session.Cookie)
	return a.sessions.SaveSession(ctx, session)
}

// newSession derives the expiry from the cookie payload, falling back to
// the cookie attributes when the payload cannot be decoded.
func (a *clientAuthService) newSession(user models.PublicUser, cookie *http.Cookie) models.Session {
	session := models.Session{Cookie: cookie, User: user}

	if claims, err := utils.ParseSessionTokenUnverified(cookie.Value); err == nil && claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
		return session
	}

	switch {
	case !cookie.Expires.IsZero():
		session.ExpiresAt = cookie.Expires
	case cookie.MaxAge > 0:
		session.ExpiresAt = a.now().Add(time.Duration(cookie.MaxAge) * time.Second)
	}

	return session
}

func (a *clientAuthService) forget(ctx context.Context) {
	a.adapter.SetSession(nil)
	if err := a.sessions.DeleteSession(ctx); err != nil {
		a.logger.Err(err).Msg("failed to delete local session")
	}
}
