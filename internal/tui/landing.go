package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/internal/service"
)

type landingAction int

const (
	actionDashboard landingAction = iota
	actionWaitlist
	actionLogin
	actionSignUp
)

var landingLabels = map[landingAction]string{
	actionDashboard: "Open dashboard",
	actionWaitlist:  "Join the Beta waitlist",
	actionLogin:     "Log in",
	actionSignUp:    "Create account",
}

// LandingModel is the start page. It offers the waitlist and the auth forms,
// and the dashboard when a session is already stored.
type LandingModel struct {
	ctx     context.Context
	account service.AccountService

	actions []landingAction
	idx     int
	status  string
}

func NewLandingModel(ctx context.Context, account service.AccountService) *LandingModel {
	return &LandingModel{
		ctx:     ctx,
		account: account,
		actions: landingActions(false),
	}
}

func (m *LandingModel) Init() tea.Cmd {
	return m.cmdCheckSession()
}

func (m *LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStateMsg:
		m.actions = landingActions(msg.authenticated)
		if m.idx >= len(m.actions) {
			m.idx = 0
		}
		return m, nil

	case landingNotice:
		m.status = msg.message
		return m, m.cmdCheckSession()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.actions)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			m.status = ""
			return m, navigateCmd(m.actions[m.idx])
		}
	}

	return m, nil
}

func (m *LandingModel) View() string {
	var b strings.Builder

	b.WriteString("Build Fast. Deploy Faster.\n")
	b.WriteString(helpStyle.Render("From idea to live app in under a minute. AI generates, we deploy."))
	b.WriteString("\n\n")

	for i, action := range m.actions {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %s\n", cursor, i+1, landingLabels[action]))
	}

	renderStatus(&b, m.status, "")

	return renderPage("QODEFLY", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

func (m *LandingModel) cmdCheckSession() tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		return sessionStateMsg{authenticated: account.IsAuthenticated(ctx)}
	}
}

func landingActions(authenticated bool) []landingAction {
	if authenticated {
		return []landingAction{actionDashboard, actionWaitlist}
	}
	return []landingAction{actionWaitlist, actionLogin, actionSignUp}
}

func navigateCmd(action landingAction) tea.Cmd {
	var nav NavigateTo
	switch action {
	case actionDashboard:
		nav = NavigateTo{Page: pageDashboard}
	case actionWaitlist:
		nav = NavigateTo{Page: pageWaitlist}
	case actionLogin:
		nav = NavigateTo{Page: pageAuth, Payload: authNotice{mode: modeLogin}}
	case actionSignUp:
		nav = NavigateTo{Page: pageAuth, Payload: authNotice{mode: modeRegister}}
	}
	return func() tea.Msg { return nav }
}
