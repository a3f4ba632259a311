package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// RecordStore is the client's in-memory canonical collection of reconciled
// records. Reloads replace it wholesale.
type RecordStore interface {
	ReplaceAll(records []models.Record)
	GetByID(id string) (models.Record, error)
	All() []models.Record
	Len() int
	Revision() uint64
}

// RevealStore holds provisional values decrypted by this client only. They
// are never persisted.
type RevealStore interface {
	Set(id string, value int64)
	Get(id string) (int64, bool)
	Delete(id string)
	Snapshot() map[string]int64
}

// SnapshotRepository persists the last reconciled record set so the client
// can render something before the first reload completes.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, records []models.Record) error
	LoadSnapshot(ctx context.Context) ([]models.Record, error)
}

// LedgerRepository is the ledger daemon's persistent contract state.
type LedgerRepository interface {
	ListRecordIDs(ctx context.Context) ([]string, error)
	GetRecord(ctx context.Context, id string) (models.LedgerRecord, error)
	RecordExists(ctx context.Context, id string) (bool, error)

	EnqueueTx(ctx context.Context, tx models.Transaction) error
	GetTx(ctx context.Context, hash string) (models.TxReceipt, error)
	PendingTxs(ctx context.Context, limit uint64) ([]models.Transaction, error)
	LatestBlock(ctx context.Context) (int64, error)

	// SettleCreate inserts record and confirms the transaction atomically.
	SettleCreate(ctx context.Context, hash string, record models.LedgerRecord, block int64, minedAt time.Time) error
	// SettleVerify marks the record verified and confirms the transaction
	// atomically. Fails with ErrRecordAlreadyVerified when the record was
	// verified by an earlier transaction.
	SettleVerify(ctx context.Context, hash, id string, value int64, block int64, minedAt time.Time) error
	// RevertTx marks the transaction reverted with reason.
	RevertTx(ctx context.Context, hash, reason string, block int64, minedAt time.Time) error
}

// CiphertextRepository stores the gateway's ciphertexts by handle.
type CiphertextRepository interface {
	SaveCiphertext(ctx context.Context, ct models.Ciphertext) error
	GetCiphertext(ctx context.Context, handle string) (models.Ciphertext, error)
}
