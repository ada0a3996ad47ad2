// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/propal-dashboard/internal/adapter"
	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/config"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/internal/tui"
	"github.com/MKhiriev/propal-dashboard/models"
)

// ui is the part of [tui.TUI] the app drives.
type ui interface {
	Run(ctx context.Context) error
}

type app struct {
	storages *store.ClientStorages
	session  *sessionctx.SessionContext
	ui       ui

	logger *logger.Logger
}

// NewApp opens local storage, connects the server adapter and builds the
// terminal UI. The returned client owns the storage and closes it on exit.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (Client, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, logger)
	session := sessionctx.NewSessionContext(services.AuthService, logger)

	return &app{
		storages: storages,
		session:  session,
		ui:       tui.New(session, services.STTService, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run restores the persisted session and shows the UI until the user quits
// or the process is interrupted.
func (a *app) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close local storage")
		}
	}()

	if err := a.session.Init(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}

	return err
}
