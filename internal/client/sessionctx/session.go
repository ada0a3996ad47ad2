// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sessionctx holds the client session context: the explicit
// container of the signed-in user that the terminal UI reads from, and the
// route guard applied to screen navigation.
package sessionctx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/models"
)

// Route names a screen of the terminal client. Routes mirror the paths of
// the web dashboard.
type Route string

const (
	RouteWelcome Route = "/"
	RouteLogin   Route = "/login"
	RouteSignup  Route = "/signup"
	RouteProfile Route = "/dashboard/profile"
	RouteAgent   Route = "/dashboard/agent"
)

// Protected reports whether the route requires a signed-in user.
func (r Route) Protected() bool {
	return strings.HasPrefix(string(r), "/dashboard/")
}

var ErrNoNavigator = errors.New("navigator is not set")

// Navigator switches the view layer to another screen. message is an
// optional notice shown on the destination screen.
type Navigator interface {
	Navigate(route Route, message string)
}

// SessionContext holds the signed-in user of the terminal client. It is
// created once per process and handed to the view layer explicitly.
type SessionContext struct {
	mu      sync.RWMutex
	session *models.Session

	auth      service.ClientAuthService
	navigator Navigator

	logger *logger.Logger
}

func NewSessionContext(auth service.ClientAuthService, logger *logger.Logger) *SessionContext {
	return &SessionContext{
		auth:   auth,
		logger: logger,
	}
}

// SetNavigator connects the context to the view layer. It must be called
// before Login, Signup or Logout.
func (s *SessionContext) SetNavigator(navigator Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigator = navigator
}

// Init restores the persisted session. A missing, expired or garbled session
// leaves the context signed out and is not an error.
func (s *SessionContext) Init(ctx context.Context) error {
	session, err := s.auth.RestoreSession(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		s.setSession(nil)
		return nil
	}
	if err != nil {
		s.setSession(nil)
		return fmt.Errorf("error restoring session: %w", err)
	}

	s.setSession(&session)
	s.logger.Info().Str("user_id", session.User.ID).Msg("session restored")
	return nil
}

// Login signs the user in and opens the profile screen. On failure the
// server's message is returned as the error and the context is unchanged.
func (s *SessionContext) Login(ctx context.Context, email, password string) error {
	session, err := s.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	s.setSession(&session)
	return s.navigate(RouteProfile, "")
}

// Signup creates an account and opens the login screen with a confirmation.
// The new user is not signed in.
func (s *SessionContext) Signup(ctx context.Context, username, email, password, phoneNumber string) error {
	_, err := s.auth.Signup(ctx, models.SignupRequest{
		Username:    username,
		Email:       email,
		Password:    password,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return err
	}

	return s.navigate(RouteLogin, models.SignupConfirmation)
}

// Logout clears the session and opens the login screen. A failed revoke on
// the server is logged and otherwise ignored.
func (s *SessionContext) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("server logout failed, local session cleared anyway")
	}

	s.setSession(nil)
	return s.navigate(RouteLogin, "")
}

// UpdateUser replaces the signed-in user locally and in the persisted
// snapshot without contacting the server.
func (s *SessionContext) UpdateUser(ctx context.Context, user models.PublicUser) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return service.ErrNotLoggedIn
	}
	updated := *s.session
	updated.User = user
	s.session = &updated
	s.mu.Unlock()

	return s.auth.SaveSession(ctx, updated)
}

// UpdateProfile saves username and company on the server and adopts the
// returned user and refreshed cookie.
func (s *SessionContext) UpdateProfile(ctx context.Context, username, company string) (models.PublicUser, error) {
	current, ok := s.User()
	if !ok {
		return models.PublicUser{}, service.ErrNotLoggedIn
	}

	session, err := s.auth.UpdateProfile(ctx, models.UpdateProfileRequest{
		UserID:   current.ID,
		Username: username,
		Company:  company,
	})
	if err != nil {
		return models.PublicUser{}, err
	}

	s.setSession(&session)
	return session.User, nil
}

// Refresh reloads the signed-in user from the server and adopts it. A
// session the server no longer accepts is logged out.
func (s *SessionContext) Refresh(ctx context.Context) (models.PublicUser, error) {
	if _, ok := s.User(); !ok {
		return models.PublicUser{}, service.ErrNotLoggedIn
	}

	user, err := s.auth.CurrentUser(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		s.logger.Info().Err(err).Msg("server rejected the session")
		if logoutErr := s.Logout(ctx); logoutErr != nil {
			return models.PublicUser{}, logoutErr
		}
		return models.PublicUser{}, err
	}
	if err != nil {
		return models.PublicUser{}, err
	}

	if err = s.UpdateUser(ctx, user); err != nil {
		return models.PublicUser{}, err
	}
	return user, nil
}

// User returns the signed-in user.
func (s *SessionContext) User() (models.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.PublicUser{}, false
	}
	return s.session.User, true
}

// Resolve applies the route guard to a requested route: protected screens
// need a user, the login and signup screens are skipped for one.
func (s *SessionContext) Resolve(route Route) Route {
	_, signedIn := s.User()

	switch {
	case route.Protected() && !signedIn:
		return RouteLogin
	case (route == RouteLogin || route == RouteSignup) && signedIn:
		return RouteProfile
	default:
		return route
	}
}

func (s *SessionContext) setSession(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *SessionContext) navigate(route Route, message string) error {
	s.mu.RLock()
	navigator := s.navigator
	s.mu.RUnlock()

	if navigator == nil {
		return ErrNoNavigator
	}
	navigator.Navigate(route, message)
	return nil
}
