// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/propal-dashboard/internal/client/sessionctx"
)

const msgMissingRequiredFields = "Missing required fields"

// LoginModel is the sign-in screen. On success the session context opens
// the profile page.
type LoginModel struct {
	ctx     context.Context
	session *sessionctx.SessionContext

	form       form
	submitting bool
	notice     string
	errMsg     string
}

func NewLoginModel(ctx context.Context, session *sessionctx.SessionContext) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: form{
			labels: []string{"Email", "Password"},
			inputs: []textinput.Model{
				newInput("you@company.com", 254, false),
				newInput("password", 256, true),
			},
		},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Enter clears the form and shows message, e.g. the signup confirmation.
func (m *LoginModel) Enter(message string) tea.Cmd {
	m.form.reset()
	m.submitting = false
	m.notice = message
	m.errMsg = ""
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(sessionctx.RouteWelcome, "")
		case keyMsg.String() == "ctrl+n":
			return m, navigate(sessionctx.RouteSignup, "")
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email, password := m.form.value(0), m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = msgMissingRequiredFields
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit │ ctrl+n: create account")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loginResultMsg{err: session.Login(ctx, email, password)}
	}
}
