// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
)

// sender is the part of *tea.Program the navigator needs.
type sender interface {
	Send(msg tea.Msg)
}

// programNavigator delivers navigation requests from the session context to
// the running program.
type programNavigator struct {
	program sender
}

func (n programNavigator) Navigate(route sessionctx.Route, message string) {
	n.program.Send(NavigateTo{Route: route, Message: message})
}

func navigate(route sessionctx.Route, message string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Route: route, Message: message}
	}
}
