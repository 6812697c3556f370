package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mcp-assistant/internal/adapter"
	"github.com/MKhiriev/mcp-assistant/internal/config"
	"github.com/MKhiriev/mcp-assistant/internal/eventsource"
	handler "github.com/MKhiriev/mcp-assistant/internal/handler/http"
	"github.com/MKhiriev/mcp-assistant/internal/logger"
	"github.com/MKhiriev/mcp-assistant/internal/provider"
	"github.com/MKhiriev/mcp-assistant/internal/server"
	"github.com/MKhiriev/mcp-assistant/internal/service"
	"github.com/MKhiriev/mcp-assistant/internal/workers"
	"github.com/MKhiriev/mcp-assistant/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	eventsource.Install()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("mcp-web")
	cfg, err := config.GetWebConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
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

	appInfo, err := service.NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	h := handler.NewHandler(services, appInfo, p, cfg.Server.RequestTimeout, log)

	// the launch-time connect runs in the background: the page is served
	// right away and follows the status stream to the lists or the error
	bgWorkers := workers.NewWorkers(
		workers.NewConnectWorker(services.CatalogService, cfg.Adapter.ConnectTimeout, log),
		workers.NewRefreshWorker(services.RefreshJob, cfg.Workers.RefreshInterval, log),
	)

	srv, err := server.NewServer(h.Init(), cfg.Server, log,
		server.WithShutdownHook(func(context.Context) error {
			bgWorkers.Stop()
			services.Close()
			return nil
		}),
		server.WithShutdownHook(p.Close),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	ctx := context.Background()
	bgWorkers.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
