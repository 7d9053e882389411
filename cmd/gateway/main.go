package main

import (
	"fmt"

	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/handler"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/server"
	"github.com/brsv-srg/qodefly-dashboard/internal/service"
	"github.com/brsv-srg/qodefly-dashboard/internal/store"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)

	log := logger.NewLogger("qodefly-gateway")
	cfg, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().
		Str("address", cfg.Address).
		Str("api_url", cfg.Adapter.APIURL).
		Dur("cookie_ttl", cfg.CookieTTL).
		Msg("received configs")

	// Per-request clients are derived with ForStore; this store is never
	// read by a request.
	clients := adapter.NewHTTPAPIClient(cfg.Adapter, store.NewMemoryTokenStore(), log)

	handlers, err := handler.NewHandlers(clients, service.NewAppInfoService(info), cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
