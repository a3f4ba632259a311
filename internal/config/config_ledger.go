// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// LedgerConfig is the configuration view of the ledger daemon.
type LedgerConfig struct {
	// ContractAddress is the only contract the daemon serves.
	ContractAddress string
	// HashKey signs responses with the HashSHA256 header. Optional.
	HashKey string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds every inbound request.
	RequestTimeout time.Duration
	// DSN is the PostgreSQL connection string.
	DSN string
	// MasterSecret seeds the dev keyring.
	MasterSecret string
	// ChainID is reported by the gateway keys endpoint.
	ChainID int64
	// BlockInterval is the mining period of the block producer.
	BlockInterval time.Duration
	// Version is reported by the version endpoint.
	Version string
}

// GetLedgerConfig builds and validates the ledger daemon config view.
func GetLedgerConfig() (*LedgerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ledgerCfg := newLedgerConfig(cfg)
	return ledgerCfg, ledgerCfg.validate()
}

// DefaultVersion is reported when APP_VERSION is unset.
const DefaultVersion = "dev"

func newLedgerConfig(cfg *StructuredConfig) *LedgerConfig {
	ledgerCfg := &LedgerConfig{
		ContractAddress: cfg.App.ContractAddress,
		HashKey:         cfg.App.HashKey,
		HTTPAddress:     cfg.Server.HTTPAddress,
		RequestTimeout:  cfg.Server.RequestTimeout,
		DSN:             cfg.Storage.Ledger.DSN,
		MasterSecret:    cfg.Gateway.MasterSecret,
		ChainID:         cfg.Gateway.ChainID,
		BlockInterval:   cfg.Workers.BlockInterval,
		Version:         cfg.App.Version,
	}

	if ledgerCfg.Version == "" {
		ledgerCfg.Version = DefaultVersion
	}

	return ledgerCfg
}
