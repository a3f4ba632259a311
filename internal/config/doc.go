// Package config provides configuration loading, merging, and validation
// facilities for the transcript client and the ledger daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the TUI client and
// [GetLedgerConfig] for the ledger daemon.
package config
