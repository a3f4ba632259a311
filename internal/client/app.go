package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
)

var (
	ErrNilServices = errors.New("client services are nil")
	ErrNilUI       = errors.New("user interface is nil")
)

// UI is the interactive front end driven by the app.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run keeps the record collection fresh in the background while the UI is
// open. It returns when the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	interval := a.workers.ReloadInterval
	if interval <= 0 {
		interval = service.DefaultReloadInterval
	}

	a.services.ReloadJob.Start(ctx, interval)
	defer a.services.ReloadJob.Stop()

	a.logger.Info().Dur("reload_interval", interval).Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
