// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/models"
)

// page is a screen managed by [RootModel].
type page interface {
	tea.Model

	// Enter is called every time the page becomes active. message is the
	// notice passed along with the navigation.
	Enter(message string) tea.Cmd
}

// RootModel is the TUI router:
// 1) keeps the active page
// 2) handles global quit, the build info window and the error overlay
// 3) applies the route guard to NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[sessionctx.Route]page
	current page
	route   sessionctx.Route

	session   *sessionctx.SessionContext
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	overlay       *errorOverlayModel
	quitByUser    bool
}

// NewRootModel registers all pages and opens the welcome screen, or the
// profile when a session was restored.
func NewRootModel(pages map[sessionctx.Route]page, session *sessionctx.SessionContext, buildInfo models.AppBuildInfo) RootModel {
	start := session.Resolve(sessionctx.RouteWelcome)
	if _, ok := session.User(); ok {
		start = sessionctx.RouteProfile
	}

	return RootModel{
		pages:     pages,
		current:   pages[start],
		route:     start,
		session:   session,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Enter("")
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.info) && r.route == sessionctx.RouteWelcome {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)
	case errMsg:
		r.overlay = &errorOverlayModel{message: humanizeError(m.err)}
		return r, nil
	case logoutDoneMsg:
		if m.err != nil {
			r.overlay = &errorOverlayModel{message: humanizeError(m.err)}
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	if p, ok := updated.(page); ok {
		r.current = p
	}
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	target := r.session.Resolve(nav.Route)
	next, exists := r.pages[target]
	if !exists {
		return r, nil
	}

	message := nav.Message
	if target != nav.Route {
		message = ""
	}

	r.showBuildInfo = false
	r.current = next
	r.route = target
	return r, r.current.Enter(message)
}

func (r RootModel) View() string {
	if r.overlay != nil {
		return r.overlay.View()
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("PROPAL AI", "", "")
	}
	return r.current.View()
}

// Route returns the active route.
func (r RootModel) Route() sessionctx.Route {
	return r.route
}
