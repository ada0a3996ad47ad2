// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/models"
)

func newTestRoot(env *testEnv) RootModel {
	ctx := context.Background()
	pages := map[sessionctx.Route]page{
		sessionctx.RouteWelcome: NewWelcomeModel(),
		sessionctx.RouteLogin:   NewLoginModel(ctx, env.session),
		sessionctx.RouteSignup:  NewSignupModel(ctx, env.session),
		sessionctx.RouteProfile: NewProfileModel(ctx, env.session),
		sessionctx.RouteAgent:   NewAgentModel(ctx, env.session, env.stt, logger.Nop()),
	}
	return NewRootModel(pages, env.session, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── start page ──

func TestNewRootModel_StartPage(t *testing.T) {
	t.Run("signed out starts on welcome", func(t *testing.T) {
		env := newTestEnv(t)
		env.signedOut(t)

		assert.Equal(t, sessionctx.RouteWelcome, newTestRoot(env).Route())
	})

	t.Run("restored session starts on profile", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(t, alice)

		root := newTestRoot(env)
		root.Init()

		assert.Equal(t, sessionctx.RouteProfile, root.Route())
		assert.Contains(t, root.View(), alice.Email)
	})
}

// ── navigation guard ──

func TestRootModel_NavigateTo(t *testing.T) {
	tests := []struct {
		name      string
		signedIn  bool
		nav       NavigateTo
		wantRoute sessionctx.Route
		wantView  string
	}{
		{
			name:      "protected page without session goes to login",
			nav:       NavigateTo{Route: sessionctx.RouteProfile},
			wantRoute: sessionctx.RouteLogin,
		},
		{
			name:      "agent page without session goes to login",
			nav:       NavigateTo{Route: sessionctx.RouteAgent, Message: "ignored"},
			wantRoute: sessionctx.RouteLogin,
		},
		{
			name:      "login carries the notice",
			nav:       NavigateTo{Route: sessionctx.RouteLogin, Message: models.SignupConfirmation},
			wantRoute: sessionctx.RouteLogin,
			wantView:  models.SignupConfirmation,
		},
		{
			name:      "signup with session goes to profile",
			signedIn:  true,
			nav:       NavigateTo{Route: sessionctx.RouteSignup},
			wantRoute: sessionctx.RouteProfile,
			wantView:  alice.ID,
		},
		{
			name:      "welcome is public",
			nav:       NavigateTo{Route: sessionctx.RouteWelcome},
			wantRoute: sessionctx.RouteWelcome,
			wantView:  "Multilingual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.signedIn {
				env.signIn(t, alice)
			} else {
				env.signedOut(t)
			}
			root := newTestRoot(env)

			root, _ = update(t, root, tt.nav)

			assert.Equal(t, tt.wantRoute, root.Route())
			if tt.wantView != "" {
				assert.Contains(t, root.View(), tt.wantView)
			}
			assert.NotContains(t, root.View(), "ignored")
		})
	}
}

// ── global keys ──

func TestRootModel_CtrlCQuits(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut(t)

	root, cmd := update(t, newTestRoot(env), keyPress(tea.KeyCtrlC))

	assert.True(t, root.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, run(cmd))
}

func TestRootModel_BuildInfo(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut(t)
	root := newTestRoot(env)

	root, _ = update(t, root, typeText("v"))
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.2.3")
	assert.Contains(t, root.View(), "abc123")

	// other keys are swallowed while the window is open
	root, _ = update(t, root, keyPress(tea.KeyEnter))
	assert.True(t, root.showBuildInfo)

	root, _ = update(t, root, keyPress(tea.KeyEsc))
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, sessionctx.RouteWelcome, root.Route())
}

func TestRootModel_BuildInfoOnlyOnWelcome(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut(t)
	root := newTestRoot(env)
	root, _ = update(t, root, NavigateTo{Route: sessionctx.RouteLogin})

	root, _ = update(t, root, typeText("v"))

	assert.False(t, root.showBuildInfo)
}

// ── error overlay ──

func TestRootModel_ErrorOverlay(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut(t)
	root := newTestRoot(env)

	root, _ = update(t, root, errMsg{err: adapter.ErrServiceUnavailable})
	require.NotNil(t, root.overlay)
	assert.Contains(t, root.View(), msgServerUnavailable)

	root, _ = update(t, root, keyPress(tea.KeyEnter))
	assert.Nil(t, root.overlay)
}

func TestRootModel_LogoutDone(t *testing.T) {
	env := newTestEnv(t)
	env.signedOut(t)
	root := newTestRoot(env)

	root, _ = update(t, root, logoutDoneMsg{})
	assert.Nil(t, root.overlay)

	root, _ = update(t, root, logoutDoneMsg{err: errors.New("no navigator")})
	require.NotNil(t, root.overlay)
	assert.Contains(t, root.View(), "no navigator")
}

// ── navigator ──

func TestProgramNavigator_SendsNavigateTo(t *testing.T) {
	sent := &recordingSender{}

	programNavigator{program: sent}.Navigate(sessionctx.RouteLogin, "hello")

	assert.Equal(t, NavigateTo{Route: sessionctx.RouteLogin, Message: "hello"}, sent.last(t))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "service unavailable", err: adapter.ErrServiceUnavailable, want: msgServerUnavailable},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: msgServerUnavailable},
		{name: "server message", err: errors.New("Invalid credentials"), want: "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
