// Package tui is the terminal dashboard built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// SessionNotifier forwards the API client's session-expired signal into the
// running program. It is created before the program exists, so the signal
// is dropped until Attach is called.
type SessionNotifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewSessionNotifier() *SessionNotifier {
	return &SessionNotifier{}
}

// Notify matches adapter.SessionExpiredFunc.
func (n *SessionNotifier) Notify() {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()

	if p != nil {
		p.Send(SessionExpiredMsg{})
	}
}

func (n *SessionNotifier) attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

type TUI struct {
	services *service.Services
	notifier *SessionNotifier

	logger *logger.Logger
}

func New(services *service.Services, notifier *SessionNotifier, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	if notifier == nil {
		notifier = NewSessionNotifier()
	}
	return &TUI{services: services, notifier: notifier, logger: logger}, nil
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.notifier.attach(p)
	defer t.notifier.attach(nil)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.QuitByUser() {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	account := t.services.AccountService

	pages := map[string]tea.Model{
		pageLanding:   NewLandingModel(ctx, account),
		pageAuth:      NewAuthModel(ctx, account),
		pageWaitlist:  NewWaitlistModel(ctx, account),
		pageDashboard: NewDashboardModel(ctx, account, t.services.ProjectService),
	}

	start := pageLanding
	if account.IsAuthenticated(ctx) {
		start = pageDashboard
	}

	return NewRootModel(pages, start, t.services.AppInfoService.BuildInfo(ctx))
}
