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

const (
	signupUsername = iota
	signupEmail
	signupPassword
	signupPhone
)

// SignupModel is the account creation screen. A successful signup does not
// sign the user in; the session context opens the login screen instead.
type SignupModel struct {
	ctx     context.Context
	session *sessionctx.SessionContext

	form       form
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, session *sessionctx.SessionContext) *SignupModel {
	return &SignupModel{
		ctx:     ctx,
		session: session,
		form: form{
			labels: []string{"Username", "Email", "Password", "Phone"},
			inputs: []textinput.Model{
				newInput("your name", 64, false),
				newInput("you@company.com", 254, false),
				newInput("password", 256, true),
				newInput("optional", 32, false),
			},
		},
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Enter(string) tea.Cmd {
	m.form.reset()
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signupResultMsg); ok {
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

			username := m.form.value(signupUsername)
			email := m.form.value(signupEmail)
			password := m.form.value(signupPassword)
			if username == "" || email == "" || password == "" {
				m.errMsg = msgMissingRequiredFields
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(username, email, password, m.form.value(signupPhone))
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ enter: submit")
}

func (m *SignupModel) cmdSignup(username, email, password, phone string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return signupResultMsg{err: session.Signup(ctx, username, email, password, phone)}
	}
}
