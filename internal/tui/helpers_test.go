// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/mock"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/models"
)

var alice = models.PublicUser{ID: "u-1", Username: "alice", Email: "alice@example.com", Company: "Acme"}

var testCatalog = models.STTCatalog{
	Providers: []models.STTProvider{
		{
			ID:          "deepgram",
			DisplayName: "Deepgram",
			Models: []models.STTModel{
				{ID: "nova-2", DisplayName: "Nova 2", Languages: []models.STTLanguage{
					{ID: "en-US", DisplayName: "English (US)"},
					{ID: "hi", DisplayName: "Hindi"},
				}},
				{ID: "whisper", DisplayName: "Whisper", Languages: []models.STTLanguage{
					{ID: "en", DisplayName: "English"},
				}},
			},
		},
		{
			ID:          "google",
			DisplayName: "Google",
			Models: []models.STTModel{
				{ID: "chirp", DisplayName: "Chirp", Languages: []models.STTLanguage{
					{ID: "ta", DisplayName: "Tamil"},
				}},
			},
		},
	},
}

func aliceSession(user models.PublicUser) models.Session {
	return models.Session{
		Cookie:    &http.Cookie{Name: "user", Value: "signed"},
		User:      user,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// recordingSender stands in for *tea.Program.
type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSender) last(t *testing.T) NavigateTo {
	t.Helper()
	require.NotEmpty(t, s.msgs)
	nav, ok := s.msgs[len(s.msgs)-1].(NavigateTo)
	require.True(t, ok)
	return nav
}

type testEnv struct {
	session *sessionctx.SessionContext
	auth    *mock.MockClientAuthService
	stt     *mock.MockClientSTTService
	sent    *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth: mock.NewMockClientAuthService(ctrl),
		stt:  mock.NewMockClientSTTService(ctrl),
		sent: &recordingSender{},
	}
	env.session = sessionctx.NewSessionContext(env.auth, logger.Nop())
	env.session.SetNavigator(programNavigator{program: env.sent})
	return env
}

// signIn restores a session for user without touching the navigator.
func (e *testEnv) signIn(t *testing.T, user models.PublicUser) {
	t.Helper()
	e.auth.EXPECT().RestoreSession(gomock.Any()).Return(aliceSession(user), nil)
	require.NoError(t, e.session.Init(context.Background()))
}

func (e *testEnv) signedOut(t *testing.T) {
	t.Helper()
	e.auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)
	require.NoError(t, e.session.Init(context.Background()))
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and returns the produced message, nil for a nil cmd.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
