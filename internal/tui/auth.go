// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The qodefly-dashboard Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/internal/app"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

// AuthModel is the login / sign-up page. Both forms share the email and
// password inputs; the confirmation input is only shown when signing up.
// Validation happens in the account service and failures are shown inline.
type AuthModel struct {
	ctx     context.Context
	account service.AccountService

	mode       authMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
	errMsg     string
}

func NewAuthModel(ctx context.Context, account service.AccountService) *AuthModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := password
	confirm.Placeholder = "Repeat your password"

	m := &AuthModel{
		ctx:     ctx,
		account: account,
		inputs:  []textinput.Model{email, password, confirm},
	}
	m.setMode(modeLogin)
	return m
}

func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authNotice:
		m.reset()
		m.setMode(msg.mode)
		m.notice = msg.message
		return m, textinput.Blink

	case authDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err, fallbackFor(msg.mode))
			return m, nil
		}
		m.reset()
		notice := app.MsgWelcomeBack
		if msg.mode == modeRegister {
			notice = app.MsgAccountCreated
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDashboard, Payload: dashboardNotice{message: notice}}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageLanding, Payload: landingNotice{}} }
		case key.Matches(msg, keys.switchMode):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			if m.mode == modeLogin {
				m.setMode(modeRegister)
			} else {
				m.setMode(modeLogin)
			}
			return m, nil
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthModel) View() string {
	var b strings.Builder

	login, register := "Log in", "Sign up"
	if m.mode == modeLogin {
		login = activeTabStyle.Render(login)
	} else {
		register = activeTabStyle.Render(register)
	}
	b.WriteString(login + "  │  " + register + "\n\n")

	if m.mode == modeLogin {
		b.WriteString("Log in to your account\n\n")
	} else {
		b.WriteString("Create your account and start building\n\n")
	}

	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("]\n")
	if m.mode == modeRegister {
		b.WriteString("Confirm password │ [")
		b.WriteString(m.inputs[fieldConfirm].View())
		b.WriteString("]\n")
	}

	b.WriteString("\n")
	b.WriteString(m.buttonLabel())
	b.WriteString("\n")

	renderStatus(&b, m.notice, m.errMsg)

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+t: log in / sign up │ enter: submit")
}

func (m *AuthModel) title() string {
	if m.mode == modeLogin {
		return "WELCOME BACK"
	}
	return "CREATE YOUR ACCOUNT"
}

func (m *AuthModel) buttonLabel() string {
	switch {
	case m.mode == modeLogin && m.submitting:
		return "[Logging in...]"
	case m.mode == modeLogin:
		return "[Log in]"
	case m.submitting:
		return "[Creating account...]"
	default:
		return "[Create Account]"
	}
}

func (m *AuthModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	account := m.account
	mode := m.mode
	email := m.inputs[fieldEmail].Value()
	password := m.inputs[fieldPassword].Value()
	confirm := m.inputs[fieldConfirm].Value()

	return func() tea.Msg {
		var (
			user models.User
			err  error
		)
		if mode == modeLogin {
			user, err = account.Login(ctx, models.Credentials{Email: email, Password: password})
		} else {
			user, err = account.Register(ctx, models.Registration{Email: email, Password: password, Confirm: confirm})
		}
		return authDoneMsg{mode: mode, user: user, err: err}
	}
}

func (m *AuthModel) setMode(mode authMode) {
	m.mode = mode
	if mode == modeLogin {
		m.inputs[fieldPassword].Placeholder = "Your password"
	} else {
		m.inputs[fieldPassword].Placeholder = "Minimum 8 characters"
	}
	if m.focus >= m.fieldCount() {
		m.focus = fieldEmail
	}
	m.applyFocus()
}

func (m *AuthModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.focus = fieldEmail
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
	m.applyFocus()
}

func (m *AuthModel) fieldCount() int {
	if m.mode == modeLogin {
		return 2
	}
	return 3
}

func (m *AuthModel) moveFocus(delta int) {
	n := m.fieldCount()
	m.focus = (m.focus + delta + n) % n
	m.applyFocus()
}

func (m *AuthModel) applyFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func fallbackFor(mode authMode) string {
	if mode == modeRegister {
		return app.MsgRegistrationFailed
	}
	return app.MsgInvalidEmailOrPassword
}
