package service

import (
	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/crypto"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/metrics"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// Services are the ledger daemon's services.
type Services struct {
	AppInfoService  AppInfoService
	ContractService ContractService
	GatewayService  GatewayService
}

func NewServices(storages *store.LedgerStorages, keys crypto.KeyRing, cfg *config.LedgerConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, build, logger)
	if err != nil {
		return nil, err
	}

	contract := NewContractService(storages.Ledger, keys, storages, cfg.ContractAddress, m, logger)

	return &Services{
		AppInfoService:  appInfo,
		ContractService: NewContractValidationService().Wrap(contract),
		GatewayService:  NewGatewayService(storages.Ciphertexts, keys, cfg.ContractAddress, cfg.ChainID, logger),
	}, nil
}
