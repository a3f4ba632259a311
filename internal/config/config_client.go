package config

import (
	"fmt"
	"time"
)

// Defaults applied to client settings left unset by every source.
const (
	DefaultProjectionWeight    = 0.9
	DefaultConfirmPollInterval = time.Second
	DefaultOperationTimeout    = 2 * time.Minute
	DefaultLogFile             = "transcript-keeper.log"
)

// ClientApp holds client identity settings.
type ClientApp struct {
	// ContractAddress is the transcript contract the client talks to.
	ContractAddress string
	// WalletKey is the hex ed25519 seed used to sign ledger writes.
	WalletKey string
	// HashKey verifies the HashSHA256 header of ledger responses. Optional.
	HashKey string
	// LogFile receives the client logs.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// LedgerURL is the base URL of the ledger API.
	LedgerURL string
	// GatewayURL is the base URL of the relayer.
	GatewayURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ConfirmPollInterval is the pending transaction polling period.
	ConfirmPollInterval time.Duration
	// OperationTimeout bounds a whole create or reveal flow.
	OperationTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SnapshotDSN is the SQLite connection string of the snapshot cache.
	SnapshotDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReloadInterval defines how often the record list is re-read.
	ReloadInterval time.Duration
}

// ClientPolicy contains statistics policy settings.
type ClientPolicy struct {
	// ProjectionWeight is the verified share of the projected metric.
	ProjectionWeight float64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Policy  ClientPolicy
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ContractAddress: cfg.App.ContractAddress,
			WalletKey:       cfg.App.WalletKey,
			HashKey:         cfg.App.HashKey,
			LogFile:         cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			LedgerURL:           cfg.Adapter.LedgerURL,
			GatewayURL:          cfg.Adapter.GatewayURL,
			RequestTimeout:      cfg.Adapter.RequestTimeout,
			ConfirmPollInterval: cfg.Adapter.ConfirmPollInterval,
			OperationTimeout:    cfg.Adapter.OperationTimeout,
		},
		Storage: ClientStorage{
			SnapshotDSN: cfg.Storage.Snapshot.DSN,
		},
		Workers: ClientWorkers{ReloadInterval: cfg.Workers.ReloadInterval},
		Policy:  ClientPolicy{ProjectionWeight: cfg.Policy.ProjectionWeight},
	}

	if clientCfg.Adapter.GatewayURL == "" {
		// the dev relayer is served by the ledger daemon itself
		clientCfg.Adapter.GatewayURL = clientCfg.Adapter.LedgerURL
	}
	if clientCfg.Adapter.ConfirmPollInterval == 0 {
		clientCfg.Adapter.ConfirmPollInterval = DefaultConfirmPollInterval
	}
	if clientCfg.Adapter.OperationTimeout == 0 {
		clientCfg.Adapter.OperationTimeout = DefaultOperationTimeout
	}
	if clientCfg.Policy.ProjectionWeight == 0 {
		clientCfg.Policy.ProjectionWeight = DefaultProjectionWeight
	}
	if clientCfg.App.LogFile == "" {
		clientCfg.App.LogFile = DefaultLogFile
	}

	return clientCfg
}
