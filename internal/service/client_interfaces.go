package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// RecordController owns the client-side lifecycle of confidential records:
// encrypted creation, two-phase verified reveal, local reveal and
// reconciliation with the ledger. Every operation publishes its progress on
// the controller's [StatusNotifier] and returns an error wrapping one of the
// failure classes in errors.go.
type RecordController interface {
	// CreateRecord validates in, encrypts the raw value for the signer,
	// submits the record and reloads once the transaction is confirmed.
	// Validation failures return before any network call.
	CreateRecord(ctx context.Context, in models.NewRecordInput) error

	// RevealRecord decrypts the record publicly and persists the proven
	// value on the ledger. Already verified records return their stored
	// value without touching the gateway. Losing the verification race to
	// another actor is reported as success with the winner's value.
	RevealRecord(ctx context.Context, id string) (*int64, error)

	// RevealLocally decrypts the record for this client only. Nothing is
	// persisted and the record stays unverified on the ledger.
	RevealLocally(ctx context.Context, id string) (*int64, error)

	// Reload replaces the reconciled collection with the ledger's state.
	// On failure the previous collection is kept.
	Reload(ctx context.Context) error

	// CheckAvailability asks the ledger whether the confidential service is
	// up.
	CheckAvailability(ctx context.Context) (bool, error)

	// InitGateway performs the one-time gateway initialization.
	InitGateway(ctx context.Context) error

	// WarmStart fills an empty collection from the local snapshot so the UI
	// has something to render before the first reload returns.
	WarmStart(ctx context.Context) error

	// Views returns the renderable records in ledger order, merged with
	// provisional local reveals.
	Views() []models.RecordView

	// Stats computes the aggregate metrics of the reconciled collection.
	Stats() models.Stats

	// Revision changes every time the reconciled collection is replaced.
	Revision() uint64

	// Owner is the signer's address.
	Owner() string

	// Notifier exposes the status banner.
	Notifier() *StatusNotifier
}

// ReloadJob periodically reloads the record collection in the background.
type ReloadJob interface {
	// Start launches the background reload goroutine, stopping any previous
	// one. A non-positive interval defaults to 30 seconds.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
