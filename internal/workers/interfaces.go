// Package workers runs the long-lived background loops of both binaries:
// the client's periodic ledger reload and the ledger daemon's block
// producer.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled or the
// worker fails; cancellation is not a failure.
type Worker interface {
	Run(ctx context.Context) error
}

// Task is one iteration of a periodic worker.
type Task func(ctx context.Context) error
