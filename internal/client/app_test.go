// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/mock"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/tui"
	"github.com/MKhiriev/propal-dashboard/models"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func newTestApp(t *testing.T, ui *fakeUI) (*app, *mock.MockClientAuthService) {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	return &app{
		storages: storages,
		session:  sessionctx.NewSessionContext(auth, logger.Nop()),
		ui:       ui,
		logger:   logger.Nop(),
	}, auth
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		restoreErr error
		uiErr      error
		wantErr    bool
		wantUICall bool
	}{
		{name: "signed out user quits", restoreErr: service.ErrNotLoggedIn, uiErr: tui.ErrUserQuit, wantUICall: true},
		{name: "restored session", uiErr: nil, wantUICall: true},
		{name: "ui failure", restoreErr: service.ErrNotLoggedIn, uiErr: errors.New("no tty"), wantErr: true, wantUICall: true},
		{name: "broken local storage", restoreErr: errors.New("disk I/O error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			a, auth := newTestApp(t, ui)

			restored := models.Session{
				User:      models.PublicUser{ID: "u-1", Username: "alice"},
				ExpiresAt: time.Now().Add(time.Hour),
			}
			auth.EXPECT().RestoreSession(gomock.Any()).Return(restored, tt.restoreErr)

			err := a.Run()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantUICall, ui.calls == 1)
		})
	}
}

func TestNewApp_BadStoragePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:3000", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(blocker, "client.db")}},
	}

	_, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Error(t, err)
}
