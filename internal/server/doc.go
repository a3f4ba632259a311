// Package server runs the ledger daemon: the HTTP API and its background
// workers, with signal handling and graceful shutdown.
package server
