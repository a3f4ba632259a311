package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing ledger URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing contract address).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWalletKey indicates a wallet key that is not a hex-encoded
	// 32-byte ed25519 seed.
	ErrInvalidWalletKey = errors.New("invalid wallet key")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero reload interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPolicyConfigs indicates a projection weight outside [0, 1].
	ErrInvalidPolicyConfigs = errors.New("invalid policy configuration")
)
