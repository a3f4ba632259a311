package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/crypto"
	"github.com/MKhiriev/go-transcript-keeper/internal/handler"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/metrics"
	"github.com/MKhiriev/go-transcript-keeper/internal/server"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/workers"
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

	log := logger.NewLogger("transcript-ledgerd")
	cfg, err := config.GetLedgerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("contract", cfg.ContractAddress).
		Str("address", cfg.HTTPAddress).
		Int64("chain_id", cfg.ChainID).
		Dur("block_interval", cfg.BlockInterval).
		Msg("received configs")

	storages, err := store.NewLedgerStorages(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	keys, err := crypto.NewKeyRing(cfg.MasterSecret, cfg.ChainID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating keyring")
	}

	m := metrics.New()

	services, err := service.NewServices(storages, keys, cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	blockProducer := workers.NewPeriodic("block-producer", cfg.BlockInterval, func(ctx context.Context) error {
		_, err := services.ContractService.MineBlock(ctx)
		return err
	}, log).Immediately()

	srv, err := server.NewServer(handlers, cfg, []server.Worker{blockProducer}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
