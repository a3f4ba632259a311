package server

import "github.com/MKhiriev/go-transcript-keeper/internal/workers"

// Server defines the lifecycle of the ledger daemon.
//
// RunServer blocks until a termination signal arrives or a component fails.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Worker is a background loop run next to the HTTP server.
type Worker = workers.Worker
