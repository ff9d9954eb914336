package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/client"
	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/service"
	"github.com/rcorral/go-robinhood/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("robinhood-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	state := session.New()
	bus := events.NewBus()

	apiAdapter, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, state, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	services := service.NewClientServices(apiAdapter, state, bus, cfg.Auth, log)

	app, err := client.NewApp(services, bus, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
