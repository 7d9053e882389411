package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/internal/app"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
)

// WaitlistModel collects an email for the beta waitlist.
type WaitlistModel struct {
	ctx     context.Context
	account service.AccountService

	input      textinput.Model
	submitting bool
	joined     bool
	errMsg     string
}

func NewWaitlistModel(ctx context.Context, account service.AccountService) *WaitlistModel {
	input := textinput.New()
	input.Placeholder = "you@example.com"
	input.CharLimit = 254
	input.Width = 40
	input.Focus()

	return &WaitlistModel{ctx: ctx, account: account, input: input}
}

func (m *WaitlistModel) Init() tea.Cmd {
	m.input.Reset()
	m.input.Focus()
	m.submitting = false
	m.joined = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *WaitlistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitlistDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err, app.MsgSomethingWentWrong)
			return m, nil
		}
		m.joined = true
		m.input.Blur()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageLanding, Payload: landingNotice{}} }
		case key.Matches(msg, keys.enter):
			if m.submitting || m.joined {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(m.input.Value())
		}
	}

	if m.joined {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WaitlistModel) View() string {
	var b strings.Builder

	if m.joined {
		b.WriteString(successStyle.Render(app.MsgWaitlistJoined))
		b.WriteString("\n")
		b.WriteString(app.MsgWaitlistJoinedDetail)
		return renderPage("JOIN THE BETA", b.String(), "esc: back")
	}

	b.WriteString("Get early access to qodefly.\n\n")
	b.WriteString("Email │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if m.submitting {
		b.WriteString("[Joining...]\n")
	} else {
		b.WriteString("[Join the Beta]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("JOIN THE BETA", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}

func (m *WaitlistModel) cmdSubmit(email string) tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		_, err := account.JoinWaitlist(ctx, email)
		return waitlistDoneMsg{err: err}
	}
}
