// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
)

type welcomeItem struct {
	title string
	route sessionctx.Route
}

var features = []struct{ title, desc string }{
	{"Multilingual", "Support for multiple Indian languages"},
	{"Intelligent", "Advanced AI-powered conversations"},
	{"Scalable", "Grows with your business needs"},
}

// WelcomeModel is the landing screen.
type WelcomeModel struct {
	items []welcomeItem
	idx   int
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{items: []welcomeItem{
		{title: "Log in", route: sessionctx.RouteLogin},
		{title: "Get started (sign up)", route: sessionctx.RouteSignup},
	}}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Enter(string) tea.Cmd {
	m.idx = 0
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(m.items[m.idx].route, "")
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(brandStyle.Render("PropAl"))
	b.WriteString(" AI\n")
	b.WriteString("Revolutionizing how small and medium businesses interact with their\n")
	b.WriteString("customers through intelligent voice AI.\n\n")

	for _, f := range features {
		b.WriteString("• ")
		b.WriteString(f.title)
		b.WriteString(": ")
		b.WriteString(f.desc)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + item.title))
		} else {
			b.WriteString("  " + item.title)
		}
		b.WriteString("\n")
	}

	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), "↑/↓: choose │ enter: open │ v: about │ q: quit")
}
