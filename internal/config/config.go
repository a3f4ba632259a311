// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// transcript client and the ledger daemon. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity settings: the target contract, the wallet key and
	// the integrity hash key.
	App App `envPrefix:"APP_"`

	// Storage holds the local snapshot database and the ledger database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the ledger daemon listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound settings used by the client to reach the ledger
	// and the gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Gateway holds the dev keyring settings used by the ledger daemon.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Workers holds the intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Policy holds product policy knobs used by the statistics engine.
	Policy Policy `envPrefix:"POLICY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application identity and security settings.
type App struct {
	// ContractAddress is the address of the transcript contract all records
	// and ciphertexts are scoped to.
	// Env: APP_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// WalletKey is the hex-encoded ed25519 seed of the client wallet. Every
	// ledger write is signed with it. Must be kept confidential.
	// Env: APP_WALLET_KEY
	WalletKey string `env:"WALLET_KEY"`

	// HashKey is the HMAC key used for response integrity checking
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogFile is where the client writes its logs while the TUI owns the
	// terminal.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Snapshot is the client-side SQLite cache of reconciled records.
	Snapshot DB `envPrefix:"SNAPSHOT_"`

	// Ledger is the PostgreSQL database of the ledger daemon.
	Ledger DB `envPrefix:"LEDGER_"`
}

// DB holds connection settings for a relational database.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// Env: STORAGE_SNAPSHOT_DSN, STORAGE_LEDGER_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the ledger daemon.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound endpoints and timeouts of the client.
type Adapter struct {
	// LedgerURL is the base URL of the ledger API.
	// Env: ADAPTER_LEDGER_URL
	LedgerURL string `env:"LEDGER_URL"`

	// GatewayURL is the base URL of the encryption/decryption relayer.
	// Env: ADAPTER_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`

	// RequestTimeout bounds every single outbound HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmPollInterval is how often a pending transaction is polled.
	// Env: ADAPTER_CONFIRM_POLL_INTERVAL
	ConfirmPollInterval time.Duration `env:"CONFIRM_POLL_INTERVAL"`

	// OperationTimeout is the outer timeout applied to a whole create or
	// reveal flow, including waiting for confirmation.
	// Env: ADAPTER_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`
}

// Gateway holds the dev keyring settings of the ledger daemon.
type Gateway struct {
	// MasterSecret seeds every key the dev keyring derives.
	// Env: GATEWAY_MASTER_SECRET
	MasterSecret string `env:"MASTER_SECRET"`

	// ChainID is reported to clients during gateway initialization.
	// Env: GATEWAY_CHAIN_ID
	ChainID int64 `env:"CHAIN_ID"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReloadInterval is how often the client re-reads the full ledger state.
	// Env: WORKERS_RELOAD_INTERVAL
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL"`

	// BlockInterval is how often the ledger daemon mines pending transactions.
	// Env: WORKERS_BLOCK_INTERVAL
	BlockInterval time.Duration `env:"BLOCK_INTERVAL"`
}

// Policy holds product policy constants that are not derived values.
type Policy struct {
	// ProjectionWeight is the share of the verified average in the projected
	// metric. The rest goes to the public coverage average. Zero selects the
	// default.
	// Env: POLICY_PROJECTION_WEIGHT
	ProjectionWeight float64 `env:"PROJECTION_WEIGHT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
