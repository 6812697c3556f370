package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/client"
	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/provider"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/internal/tui"
	"github.com/MKhiriev/mcp-assistant/models"
)

const role = "mcp-assistant"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	eventsource.Install()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewClientLogger(role, "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Log.File != "" {
		log = logger.NewClientLogger(role, cfg.Log.File)
	}
	logger.SetLevel(cfg.Log.Level)

	log.Debug().Any("config", cfg).Msg("received configs")

	p := provider.New(cfg.Adapter.ServerURL, func(serverURL string) (adapter.Handle, error) {
		adapterCfg := cfg.Adapter
		adapterCfg.ServerURL = serverURL
		return adapter.NewMCPHandle(adapterCfg, cfg.App, log)
	})

	handle, err := p.Handle()
	if err != nil {
		log.Fatal().Err(err).Msg("create mcp handle")
	}

	services := service.NewClientServices(handle, log)

	ui, err := tui.New(services, cfg.App.Name, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(p, services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
