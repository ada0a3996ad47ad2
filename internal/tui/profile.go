// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
	"github.com/MKhiriev/propal-dashboard/models"
)

const (
	profileUsername = iota
	profileCompany
)

const (
	msgProfileSaved = "Profile updated successfully"
	msgIDCopied     = "User ID copied to clipboard"
	statusTTL       = 2 * time.Second
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// ProfileModel shows the signed-in user and edits username and company.
type ProfileModel struct {
	ctx     context.Context
	session *sessionctx.SessionContext

	user   models.PublicUser
	form   form
	saving bool
	notice string
	errMsg string
}

func NewProfileModel(ctx context.Context, session *sessionctx.SessionContext) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		session: session,
		form: form{
			labels: []string{"Username", "Company"},
			inputs: []textinput.Model{
				newInput("your name", 64, false),
				newInput("optional", 128, false),
			},
		},
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

// Enter fills the form from the current session user and asks the server
// for the stored record.
func (m *ProfileModel) Enter(message string) tea.Cmd {
	m.user, _ = m.session.User()
	m.form.reset()
	m.form.inputs[profileUsername].SetValue(m.user.Username)
	m.form.inputs[profileCompany].SetValue(m.user.Company)
	m.saving = false
	m.notice = message
	m.errMsg = ""
	return tea.Batch(textinput.Blink, m.cmdRefresh())
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileRefreshedMsg:
		// the session user stays on screen when the server can't be asked
		if msg.err != nil || msg.user.ID != m.user.ID {
			return m, nil
		}
		if !m.edited() {
			m.form.inputs[profileUsername].SetValue(msg.user.Username)
			m.form.inputs[profileCompany].SetValue(msg.user.Company)
		}
		m.user = msg.user
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.errMsg = ""
		m.notice = msgProfileSaved
		return m, clearStatusAfter(statusTTL)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice = msgIDCopied
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.agent):
			return m, navigate(sessionctx.RouteAgent, "")
		case key.Matches(msg, keys.copyID):
			return m, m.cmdCopyID()
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.saving {
				return m, nil
			}

			username := m.form.value(profileUsername)
			if username == "" {
				m.errMsg = msgMissingRequiredFields
				return m, nil
			}

			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(username, m.form.value(profileCompany))
		}
	}

	return m, m.form.update(msg)
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	b.WriteString("ID           │ ")
	b.WriteString(valueOrDash(m.user.ID))
	b.WriteString("\nEmail        │ ")
	b.WriteString(valueOrDash(m.user.Email))
	b.WriteString("\nPhone        │ ")
	b.WriteString(valueOrDash(m.user.PhoneNumber))
	b.WriteString("\nMember since │ ")
	if m.user.CreatedAt != nil {
		b.WriteString(m.user.CreatedAt.Local().Format("2006-01-02"))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n\n")

	b.WriteString(m.form.view())
	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save changes]\n")
	}
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: save │ ctrl+y: copy ID │ ctrl+a: agent │ ctrl+l: log out")
}

// edited reports whether the form differs from the displayed user.
func (m *ProfileModel) edited() bool {
	return m.form.value(profileUsername) != m.user.Username ||
		m.form.value(profileCompany) != m.user.Company
}

func (m *ProfileModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.Refresh(ctx)
		return profileRefreshedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdSave(username, company string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.UpdateProfile(ctx, username, company)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdCopyID() tea.Cmd {
	id := m.user.ID

	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(id)}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
