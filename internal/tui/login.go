// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel asks for a bearer token or a plain user id and opens a session
// with them. The note service decides which of the two it accepts.
type loginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	result     models.Session
	quitByUser bool
}

func newLoginModel(ctx context.Context, session service.ClientSessionService, userID string) *loginModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "bearer token (optional)"
	tokenInput.Width = 48
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'

	userInput := textinput.New()
	userInput.Placeholder = "user id"
	userInput.CharLimit = 128
	userInput.Width = 48
	userInput.SetValue(userID)

	m := &loginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{tokenInput, userInput},
	}
	m.inputs[0].Focus()
	return m
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update submits on enter, cycles focus on tab and quits on esc or ctrl+c.
// Everything else goes to the focused input.
func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(sessionStartedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = describeError(result.err)
			return m, nil
		}
		m.result = result.session
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c" || key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case key.Matches(keyMsg, keys.backtab):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			token := strings.TrimSpace(m.inputs[0].Value())
			userID := strings.TrimSpace(m.inputs[1].Value())
			if token == "" && userID == "" {
				m.errMsg = "enter a token or a user id"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdStart(token, userID)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString(fieldLabelStyle.Render("Token"))
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(fieldLabelStyle.Render("User"))
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Signing in…"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in │ esc: quit")
}

func (m *loginModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *loginModel) cmdStart(token, userID string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		s, err := session.Start(ctx, token, userID)
		return sessionStartedMsg{session: s, err: err}
	}
}
