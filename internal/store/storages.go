package store

import (
	"context"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
)

// ClientStorages bundles the client's in-memory and on-disk state.
type ClientStorages struct {
	Records   RecordStore
	Reveals   RevealStore
	Snapshots SnapshotRepository

	db *DB
}

// NewClientStorages opens the snapshot database at dsn.
func NewClientStorages(ctx context.Context, dsn string, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Records:   NewRecordStore(),
		Reveals:   NewRevealStore(),
		Snapshots: NewSnapshotRepository(db),
		db:        db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LedgerStorages bundles the ledger daemon's contract and gateway state.
type LedgerStorages struct {
	Ledger      LedgerRepository
	Ciphertexts CiphertextRepository

	db *DB
}

func NewLedgerStorages(ctx context.Context, dsn string, log *logger.Logger) (*LedgerStorages, error) {
	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	return &LedgerStorages{
		Ledger:      NewLedgerRepository(db),
		Ciphertexts: NewCiphertextRepository(db),
		db:          db,
	}, nil
}

// Ping reports whether the ledger database is reachable.
func (s *LedgerStorages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *LedgerStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
