package http

import (
	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
)

type Handler struct {
	clients adapter.ClientFactory
	appInfo service.AppInfoService
	cfg     config.Gateway

	logger *logger.Logger
}

func NewHandler(clients adapter.ClientFactory, appInfo service.AppInfoService, cfg config.Gateway, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		clients: clients,
		appInfo: appInfo,
		cfg:     cfg,
		logger:  logger,
	}
}
