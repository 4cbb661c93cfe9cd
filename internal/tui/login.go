// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
)

const (
	loginFieldUser = iota
	loginFieldPassword
)

// LoginModel is the sign-in page. A successful submit produces a
// [LoginResult] that [RootModel] turns into a switch to the account list.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	// notice explains why the previous session ended.
	notice string
}

// NewLoginModel returns the sign-in page with the username focused.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 40
	user.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{loginFieldUser: user, loginFieldPassword: password},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.Err)
			return m, nil
		}
		m.errMsg, m.notice = "", ""
		m.inputs[loginFieldPassword].SetValue("")
		return m, nil

	case noticeMsg:
		m.notice = msg.notice.Message
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, cmdQuit
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(noticeStyles[models.NoticeWarning].Render(m.notice) + "\n\n")
	}

	labels := []string{loginFieldUser: "Username", loginFieldPassword: "Password"}
	for i, in := range m.inputs {
		marker := "  "
		if i == m.focus {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker + labels[i] + "\n  " + in.View() + "\n\n")
	}

	switch {
	case m.submitting:
		b.WriteString(helpStyle.Render("Signing in..."))
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: quit │ tab: next field │ enter: submit │ f1: about")
}

// submit validates the form and starts the login request. Enter is ignored
// while a request is in flight.
func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	username := strings.TrimSpace(m.inputs[loginFieldUser].Value())
	password := m.inputs[loginFieldPassword].Value()
	if username == "" || password == "" {
		m.errMsg = errEmptyUsername.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, username, password)
		return LoginResult{User: user, Err: err}
	}
}

func (m *LoginModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
