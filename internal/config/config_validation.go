// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"strings"
)

// validate checks invariants shared by every config view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Policy.ProjectionWeight < 0 || cfg.Policy.ProjectionWeight > 1 {
		return ErrInvalidPolicyConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SnapshotDSN == "" || strings.Contains(cfg.Storage.SnapshotDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.LedgerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReloadInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ContractAddress == "" {
		return ErrInvalidAppConfigs
	}
	if seed, err := hex.DecodeString(cfg.App.WalletKey); err != nil || len(seed) != 32 {
		return ErrInvalidWalletKey
	}

	return nil
}

func (cfg *LedgerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.BlockInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.ContractAddress == "" || cfg.MasterSecret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
