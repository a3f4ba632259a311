package service

import (
	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
)

type ClientServices struct {
	Records   RecordController
	ReloadJob ReloadJob
}

func NewClientServices(
	ledger adapter.LedgerClient,
	gateway adapter.Gateway,
	signer adapter.Signer,
	storages *store.ClientStorages,
	settings ControllerSettings,
	log *logger.Logger,
) *ClientServices {
	controller := NewRecordController(
		ledger, gateway, signer,
		storages.Records, storages.Reveals, storages.Snapshots,
		settings, log,
	)

	return &ClientServices{
		Records:   controller,
		ReloadJob: NewReloadJob(controller, log),
	}
}
