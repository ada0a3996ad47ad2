// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/service"
	"github.com/MKhiriev/propal-dashboard/models"
)

// Cascade levels of the agent page.
const (
	levelProvider = iota
	levelModel
	levelLanguage
)

var levelTitles = [...]string{"Provider", "Model", "Language"}

const msgPreferencesSaved = "Preferences saved"

type option struct {
	id   string
	name string
}

// AgentModel picks the speech-to-text provider, model and language.
// Choosing a level clears the levels below it.
type AgentModel struct {
	ctx     context.Context
	session *sessionctx.SessionContext
	stt     service.ClientSTTService
	logger  *logger.Logger

	loading   bool
	catalog   models.STTCatalog
	selection models.STTSelection
	level     int
	cursor    int
	notice    string
	errMsg    string
}

func NewAgentModel(ctx context.Context, session *sessionctx.SessionContext, stt service.ClientSTTService, logger *logger.Logger) *AgentModel {
	return &AgentModel{
		ctx:     ctx,
		session: session,
		stt:     stt,
		logger:  logger,
	}
}

func (m *AgentModel) Init() tea.Cmd {
	return nil
}

func (m *AgentModel) Enter(message string) tea.Cmd {
	m.loading = true
	m.notice = message
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *AgentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agentLoadedMsg:
		m.loading = false
		m.catalog = msg.catalog
		m.selection = msg.selection
		m.level = levelFor(m.selection)
		m.cursor = m.selectedIndex()
		if msg.err != nil {
			err := msg.err
			return m, func() tea.Msg { return errMsg{err: err} }
		}
		return m, nil

	case preferencesSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = msgPreferencesSaved
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *AgentModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.profile):
		return m, navigate(sessionctx.RouteProfile, "")
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	if m.loading {
		return m, nil
	}

	opts := m.options()
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.back):
		if m.level > levelProvider {
			m.level--
			m.cursor = m.selectedIndex()
		}
	case key.Matches(msg, keys.enter):
		if len(opts) == 0 {
			return m, nil
		}
		return m, m.choose(opts[m.cursor].id)
	}
	return m, nil
}

func (m *AgentModel) choose(id string) tea.Cmd {
	m.errMsg = ""

	switch m.level {
	case levelProvider:
		m.selection = m.selection.WithProvider(id)
		m.level = levelModel
	case levelModel:
		m.selection = m.selection.WithModel(id)
		m.level = levelLanguage
	case levelLanguage:
		m.selection = m.selection.WithLanguage(id)
		return m.cmdSave()
	}

	m.cursor = 0
	return nil
}

// options lists the choices of the current level.
func (m *AgentModel) options() []option {
	var opts []option

	switch m.level {
	case levelProvider:
		for _, p := range m.catalog.Providers {
			opts = append(opts, option{id: p.ID, name: p.DisplayName})
		}
	case levelModel:
		if p, ok := m.catalog.Provider(m.selection.Provider); ok {
			for _, md := range p.Models {
				opts = append(opts, option{id: md.ID, name: md.DisplayName})
			}
		}
	case levelLanguage:
		if p, ok := m.catalog.Provider(m.selection.Provider); ok {
			if md, ok := p.Model(m.selection.Model); ok {
				for _, l := range md.Languages {
					opts = append(opts, option{id: l.ID, name: l.DisplayName})
				}
			}
		}
	}

	return opts
}

func (m *AgentModel) selectedIndex() int {
	var current string
	switch m.level {
	case levelProvider:
		current = m.selection.Provider
	case levelModel:
		current = m.selection.Model
	case levelLanguage:
		current = m.selection.Language
	}

	for i, o := range m.options() {
		if o.id == current {
			return i
		}
	}
	return 0
}

func levelFor(selection models.STTSelection) int {
	switch {
	case selection.Provider == "":
		return levelProvider
	case selection.Model == "":
		return levelModel
	default:
		return levelLanguage
	}
}

func (m *AgentModel) View() string {
	if m.loading {
		return renderPage("AI AGENT", "Loading speech-to-text catalog...", "esc: back")
	}

	var b strings.Builder

	view := m.catalog.Describe(m.selection)
	for i, v := range []string{view.Provider, view.Model, view.Language} {
		b.WriteString(levelTitles[i])
		b.WriteString(strings.Repeat(" ", len("Language")-len(levelTitles[i])))
		b.WriteString(" │ ")
		b.WriteString(valueOrDash(v))
		b.WriteString("\n")
	}

	b.WriteString("\nSelect ")
	b.WriteString(strings.ToLower(levelTitles[m.level]))
	b.WriteString(":\n")

	opts := m.options()
	if len(opts) == 0 {
		b.WriteString("  (nothing available)\n")
	}
	for i, o := range opts {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + o.name))
		} else {
			b.WriteString("  " + o.name)
		}
		b.WriteString("\n")
	}

	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("AI AGENT", strings.TrimRight(b.String(), "\n"),
		"↑/↓: choose │ enter: select │ ←: previous level │ esc: profile │ ctrl+l: log out")
}

func (m *AgentModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	session := m.session
	stt := m.stt
	log := m.logger

	return func() tea.Msg {
		catalog, err := stt.Catalog(ctx)
		if err != nil {
			return agentLoadedMsg{err: err}
		}

		user, _ := session.User()
		selection, err := stt.LoadPreferences(ctx, user.ID)
		if err != nil {
			log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to load stt preferences")
			return agentLoadedMsg{catalog: catalog}
		}

		return agentLoadedMsg{catalog: catalog, selection: selection}
	}
}

func (m *AgentModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	session := m.session
	stt := m.stt
	catalog := m.catalog
	selection := m.selection

	return func() tea.Msg {
		user, _ := session.User()
		return preferencesSavedMsg{err: stt.SavePreferences(ctx, user.ID, catalog, selection)}
	}
}

func (m *AgentModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}
