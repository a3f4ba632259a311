package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
	"github.com/MKhiriev/go-transcript-keeper/internal/client"
	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/stats"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/tui"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("transcript-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the TUI owns the terminal, logs go to a file
	log, logFile := logger.NewClientLogger("transcript-client", cfg.App.LogFile)
	defer logFile.Close()

	approver := tui.NewApprover()
	signer, err := adapter.NewWalletSigner(cfg.App.WalletKey, approver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet signer")
	}

	ledger, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, cfg.App, signer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ledger adapter")
	}

	gateway, err := adapter.NewHTTPGatewayAdapter(cfg.Adapter, cfg.App, signer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gateway adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage.SnapshotDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(ledger, gateway, signer, storages, service.ControllerSettings{
		ContractAddress:  cfg.App.ContractAddress,
		OperationTimeout: cfg.Adapter.OperationTimeout,
		Policy:           stats.Policy{ProjectionWeight: cfg.Policy.ProjectionWeight},
	}, log)

	ui, err := tui.New(services.Records, approver, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
