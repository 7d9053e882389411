package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/app"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type dashboardTab int

const (
	tabProjects dashboardTab = iota
	tabSettings
)

const statusTTL = 2 * time.Second

var (
	clipboardWriteDefault = clipboard.WriteAll
	clipboardWrite        = clipboardWriteDefault
)

// DashboardModel is the protected area: projects and account settings.
// Opening it without a session, or losing the session while it is open,
// sends the user to the login form.
type DashboardModel struct {
	ctx      context.Context
	account  service.AccountService
	projects service.ProjectService

	tab      dashboardTab
	loading  bool
	user     *models.User
	overview models.ProjectsOverview
	status   string
	errMsg   string
}

func NewDashboardModel(ctx context.Context, account service.AccountService, projects service.ProjectService) *DashboardModel {
	return &DashboardModel{ctx: ctx, account: account, projects: projects}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.user = nil
	m.errMsg = ""
	return tea.Batch(m.cmdLoadProfile(), m.cmdLoadProjects())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardNotice:
		m.tab = tabProjects
		cmd := m.Init()
		m.status = msg.message
		return m, tea.Batch(cmd, cmdClearStatus())

	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, toLogin(profileNotice(msg.err))
		}
		user := msg.user
		m.user = &user
		return m, nil

	case projectsLoadedMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err, app.MsgSomethingWentWrong)
			return m, nil
		}
		m.overview = msg.overview
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err, app.MsgSomethingWentWrong)
			return m, nil
		}
		m.user = nil
		return m, func() tea.Msg { return NavigateTo{Page: pageLanding, Payload: landingNotice{}} }

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = app.MsgEmailCopied
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.projects):
			m.tab = tabProjects
		case key.Matches(msg, keys.settings):
			m.tab = tabSettings
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.copy):
			if m.tab == tabSettings && m.user != nil {
				return m, cmdCopyToClipboard(m.user.Email)
			}
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageLanding, Payload: landingNotice{}} }
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return renderPage("DASHBOARD", "Loading...", "esc: back")
	}

	var b strings.Builder

	projects, settings := "Projects", "Settings"
	if m.tab == tabProjects {
		projects = activeTabStyle.Render(projects)
	} else {
		settings = activeTabStyle.Render(settings)
	}
	b.WriteString(projects + "  │  " + settings + "\n\n")

	if m.tab == tabProjects {
		m.writeProjects(&b)
	} else {
		m.writeSettings(&b)
	}

	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "p: projects │ s: settings │ r: reload │ L: log out │ esc: back"
	if m.tab == tabSettings {
		hotKeys = "c: copy email │ " + hotKeys
	}
	return renderPage("QODEFLY DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) writeProjects(b *strings.Builder) {
	b.WriteString("Create and manage your web projects\n\n")

	if !m.overview.Empty() {
		for _, p := range m.overview.Projects {
			b.WriteString(fmt.Sprintf("• %s\n", p.Name))
		}
		return
	}

	b.WriteString("Create your first project\n")
	b.WriteString(helpStyle.Render("Describe what you want to build, and our AI will generate it for you."))
	b.WriteString("\n\n")
	for _, s := range m.overview.Starters {
		b.WriteString(fmt.Sprintf("💬 %q  %s\n", s.Prompt, helpStyle.Render(s.Kind)))
	}
}

func (m *DashboardModel) writeSettings(b *strings.Builder) {
	b.WriteString("Manage your account\n\n")

	email, plan, since := "Loading...", "Loading...", "Loading..."
	if m.user != nil {
		email = m.user.Email
		plan = m.user.PlanLabel()
		since = valueOr(m.user.MemberSince(), "Unknown")
	}

	b.WriteString("Email        │ " + email + "\n")
	b.WriteString("Account type │ " + plan + "\n")
	b.WriteString("Member since │ " + since + "\n")
}

func (m *DashboardModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		user, err := account.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *DashboardModel) cmdLoadProjects() tea.Cmd {
	ctx := m.ctx
	projects := m.projects

	return func() tea.Msg {
		overview, err := projects.Overview(ctx)
		return projectsLoadedMsg{overview: overview, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	account := m.account

	return func() tea.Msg {
		return logoutDoneMsg{err: account.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func toLogin(notice string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageAuth, Payload: authNotice{mode: modeLogin, message: notice}}
	}
}

func profileNotice(err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return app.MsgNotAuthenticated
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	default:
		return service.UserMessage(err, app.MsgSomethingWentWrong)
	}
}
