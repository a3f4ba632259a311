// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// ledgerRepository is the PostgreSQL-backed contract state of the ledger
// daemon. Records change only through Settle* calls made by the block
// producer, each of which also settles the transaction that caused it.
type ledgerRepository struct {
	*DB
}

func NewLedgerRepository(db *DB) LedgerRepository {
	return &ledgerRepository{DB: db}
}

func (l *ledgerRepository) ListRecordIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordIDsQuery()
	if err != nil {
		return nil, err
	}

	var ids []string
	err = l.withRetry(ctx, func() error {
		ids = ids[:0]
		rows, queryErr := l.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if scanErr := rows.Scan(&id); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			ids = append(ids, id)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.ListRecordIDs").Msg("failed to list record ids")
		return nil, err
	}

	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (l *ledgerRepository) GetRecord(ctx context.Context, id string) (models.LedgerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(id)
	if err != nil {
		return models.LedgerRecord{}, err
	}

	var (
		r         models.LedgerRecord
		createdAt time.Time
	)
	err = l.withRetry(ctx, func() error {
		return l.DB.QueryRowContext(ctx, query, args...).Scan(
			&r.ID, &r.Name, &r.EncryptedValue, &r.PublicValue1, &r.PublicValue2,
			&r.Description, &r.Creator, &createdAt, &r.IsVerified, &r.DecryptedValue,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.LedgerRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.GetRecord").Str("record_id", id).Msg("failed to get record")
		return models.LedgerRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	r.Timestamp = createdAt.Unix()
	return r, nil
}

func (l *ledgerRepository) RecordExists(ctx context.Context, id string) (bool, error) {
	query, args, err := buildRecordExistsQuery(id)
	if err != nil {
		return false, err
	}

	var verified bool
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&verified)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.RecordExists").
			Str("record_id", id).
			Msg("failed to check record")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

func (l *ledgerRepository) EnqueueTx(ctx context.Context, tx models.Transaction) error {
	query, args, err := buildInsertTxQuery(tx)
	if err != nil {
		return err
	}

	err = l.withRetry(ctx, func() error {
		_, execErr := l.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.EnqueueTx").
			Str("tx_hash", tx.Hash).
			Msg("failed to enqueue transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *ledgerRepository) GetTx(ctx context.Context, hash string) (models.TxReceipt, error) {
	query, args, err := buildGetTxQuery(hash)
	if err != nil {
		return models.TxReceipt{}, err
	}

	var (
		receipt models.TxReceipt
		kind    string
		status  string
		minedAt sql.NullTime
	)
	err = l.withRetry(ctx, func() error {
		return l.DB.QueryRowContext(ctx, query, args...).Scan(
			&receipt.Hash, &kind, &status, &receipt.Reason,
			&receipt.BlockNumber, &receipt.SubmittedAt, &minedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.TxReceipt{}, ErrTxNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.GetTx").
			Str("tx_hash", hash).
			Msg("failed to get transaction")
		return models.TxReceipt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	receipt.Kind = models.TxKind(kind)
	receipt.Status = models.TxStatus(status)
	if minedAt.Valid {
		t := minedAt.Time
		receipt.MinedAt = &t
	}
	return receipt, nil
}

// PendingTxs returns up to limit pending transactions in submission order.
func (l *ledgerRepository) PendingTxs(ctx context.Context, limit uint64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPendingTxsQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ledgerRepository.PendingTxs").Msg("failed to query pending transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0, limit)
	for rows.Next() {
		var (
			tx   models.Transaction
			kind string
		)
		if err = rows.Scan(&tx.Hash, &kind, &tx.Sender, &tx.Payload, &tx.SubmittedAt); err != nil {
			log.Err(err).Str("func", "ledgerRepository.PendingTxs").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tx.Kind = models.TxKind(kind)
		tx.Status = models.TxPending
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return txs, nil
}

func (l *ledgerRepository) LatestBlock(ctx context.Context) (int64, error) {
	query, args, err := buildLatestBlockQuery()
	if err != nil {
		return 0, err
	}

	var block int64
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&block); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ledgerRepository.LatestBlock").Msg("failed to read latest block")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return block, nil
}

func (l *ledgerRepository) SettleCreate(ctx context.Context, hash string, record models.LedgerRecord, block int64, minedAt time.Time) error {
	insertQuery, insertArgs, err := buildInsertRecordQuery(record)
	if err != nil {
		return err
	}

	err = l.inTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
			if isUniqueViolation(execErr) {
				return ErrRecordExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return settleTx(ctx, tx, hash, models.TxConfirmed, "", block, minedAt)
	})
	if err != nil && !errors.Is(err, ErrRecordExists) {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.SettleCreate").
			Str("tx_hash", hash).
			Str("record_id", record.ID).
			Msg("failed to settle create transaction")
	}
	return err
}

func (l *ledgerRepository) SettleVerify(ctx context.Context, hash, id string, value int64, block int64, minedAt time.Time) error {
	updateQuery, updateArgs, err := buildMarkVerifiedQuery(id, value)
	if err != nil {
		return err
	}
	existsQuery, existsArgs, err := buildRecordExistsQuery(id)
	if err != nil {
		return err
	}

	err = l.inTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, updateQuery, updateArgs...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		if n, _ := res.RowsAffected(); n == 0 {
			var verified bool
			scanErr := tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&verified)
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrRecordNotFound
			}
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
			}
			return ErrRecordAlreadyVerified
		}

		return settleTx(ctx, tx, hash, models.TxConfirmed, "", block, minedAt)
	})
	if err != nil && !errors.Is(err, ErrRecordAlreadyVerified) && !errors.Is(err, ErrRecordNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "ledgerRepository.SettleVerify").
			Str("tx_hash", hash).
			Str("record_id", id).
			Msg("failed to settle verify transaction")
	}
	return err
}

func (l *ledgerRepository) RevertTx(ctx context.Context, hash, reason string, block int64, minedAt time.Time) error {
	return l.inTx(ctx, func(tx *sql.Tx) error {
		return settleTx(ctx, tx, hash, models.TxReverted, reason, block, minedAt)
	})
}

func settleTx(ctx context.Context, tx *sql.Tx, hash string, status models.TxStatus, reason string, block int64, minedAt time.Time) error {
	query, args, err := buildSettleTxQuery(hash, status, reason, block, minedAt)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTxAlreadySettled
	}
	return nil
}

// inTx runs fn in a transaction, retrying the whole transaction on transient
// failures.
func (l *ledgerRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return l.withRetry(ctx, func() error {
		tx, err := l.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}
