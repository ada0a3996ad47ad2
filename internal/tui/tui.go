// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/models"
)

type TUI struct {
	session   *sessionctx.SessionContext
	stt       service.ClientSTTService
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(session *sessionctx.SessionContext, stt service.ClientSTTService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		session:   session,
		stt:       stt,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (t *TUI) pages(ctx context.Context) map[sessionctx.Route]page {
	return map[sessionctx.Route]page{
		sessionctx.RouteWelcome: NewWelcomeModel(),
		sessionctx.RouteLogin:   NewLoginModel(ctx, t.session),
		sessionctx.RouteSignup:  NewSignupModel(ctx, t.session),
		sessionctx.RouteProfile: NewProfileModel(ctx, t.session),
		sessionctx.RouteAgent:   NewAgentModel(ctx, t.session, t.stt, t.logger),
	}
}

// Run shows the dashboard until the user quits. Quitting with ctrl+c
// returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), t.session, t.buildInfo)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.session.SetNavigator(programNavigator{program: program})

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
