package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brsv-srg/qodefly-dashboard/internal/client"
	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("qodefly-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)
	log.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
