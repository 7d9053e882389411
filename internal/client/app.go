package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
	"github.com/brsv-srg/qodefly-dashboard/internal/store"
	"github.com/brsv-srg/qodefly-dashboard/internal/tui"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

// UI is the part of the terminal dashboard App drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	ui       UI

	logger *logger.Logger
}

// NewApp wires storages, API client, services and UI from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Session, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	notifier := tui.NewSessionNotifier()
	api := adapter.NewHTTPAPIClient(cfg.Adapter, storages.TokenStore, log,
		adapter.WithSessionExpired(notifier.Notify),
	)

	services, err := service.NewServices(api, info, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	ui, err := tui.New(services, notifier, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{storages: storages, ui: ui, logger: log}, nil
}

// Run blocks until the UI exits and releases the storages afterwards.
// Quitting with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close client storages")
		}
	}()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
