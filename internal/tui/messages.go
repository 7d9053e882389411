package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

// Page names registered in RootModel.
const (
	pageLanding   = "landing"
	pageAuth      = "auth"
	pageWaitlist  = "waitlist"
	pageDashboard = "dashboard"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SessionExpiredMsg is sent into the program when the API rejects the
// stored session.
type SessionExpiredMsg struct{}

// authNotice opens the auth page on a given tab with a banner.
type authNotice struct {
	mode    authMode
	message string
}

// landingNotice shows a status line on the landing page.
type landingNotice struct {
	message string
}

// dashboardNotice shows a status line on the dashboard and triggers a reload.
type dashboardNotice struct {
	message string
}

type sessionStateMsg struct {
	authenticated bool
}

type authDoneMsg struct {
	mode authMode
	user models.User
	err  error
}

type waitlistDoneMsg struct {
	err error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type projectsLoadedMsg struct {
	overview models.ProjectsOverview
	err      error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
