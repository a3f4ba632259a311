package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		ContractAddress string `json:"contract_address"`
		WalletKey       string `json:"wallet_key"`
		HashKey         string `json:"hash_key"`
		LogFile         string `json:"log_file"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Snapshot struct {
			DSN string `json:"dsn"`
		} `json:"snapshot,omitempty"`
		Ledger struct {
			DSN string `json:"dsn"`
		} `json:"ledger,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		LedgerURL           string   `json:"ledger_url"`
		GatewayURL          string   `json:"gateway_url"`
		RequestTimeout      Duration `json:"request_timeout"`
		ConfirmPollInterval Duration `json:"confirm_poll_interval"`
		OperationTimeout    Duration `json:"operation_timeout"`
	} `json:"adapter,omitempty"`

	Gateway struct {
		MasterSecret string `json:"master_secret"`
		ChainID      int64  `json:"chain_id"`
	} `json:"gateway,omitempty"`

	Workers struct {
		ReloadInterval Duration `json:"reload_interval"`
		BlockInterval  Duration `json:"block_interval"`
	} `json:"workers,omitempty"`

	Policy struct {
		ProjectionWeight float64 `json:"projection_weight"`
	} `json:"policy,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ContractAddress: jsonCfg.App.ContractAddress,
			WalletKey:       jsonCfg.App.WalletKey,
			HashKey:         jsonCfg.App.HashKey,
			LogFile:         jsonCfg.App.LogFile,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			Snapshot: DB{DSN: jsonCfg.Storage.Snapshot.DSN},
			Ledger:   DB{DSN: jsonCfg.Storage.Ledger.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			LedgerURL:           jsonCfg.Adapter.LedgerURL,
			GatewayURL:          jsonCfg.Adapter.GatewayURL,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			ConfirmPollInterval: time.Duration(jsonCfg.Adapter.ConfirmPollInterval),
			OperationTimeout:    time.Duration(jsonCfg.Adapter.OperationTimeout),
		},
		Gateway: Gateway{
			MasterSecret: jsonCfg.Gateway.MasterSecret,
			ChainID:      jsonCfg.Gateway.ChainID,
		},
		Workers: Workers{
			ReloadInterval: time.Duration(jsonCfg.Workers.ReloadInterval),
			BlockInterval:  time.Duration(jsonCfg.Workers.BlockInterval),
		},
		Policy: Policy{
			ProjectionWeight: jsonCfg.Policy.ProjectionWeight,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
