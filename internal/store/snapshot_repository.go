package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// snapshotRepository keeps the last reconciled record set in the client's
// SQLite file.
type snapshotRepository struct {
	*DB
}

func NewSnapshotRepository(db *DB) SnapshotRepository {
	return &snapshotRepository{DB: db}
}

// SaveSnapshot replaces the stored snapshot with records in one transaction.
func (s *snapshotRepository) SaveSnapshot(ctx context.Context, records []models.Record) error {
	log := logger.FromContext(ctx)

	clearQuery, clearArgs, err := buildClearSnapshotQuery()
	if err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to clear snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(records); start += snapshotInsertChunk {
		end := min(start+snapshotInsertChunk, len(records))

		query, args, buildErr := buildInsertSnapshotQuery(records[start:end], start)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.SaveSnapshot").
				Int("offset", start).
				Msg("failed to insert snapshot rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.SaveSnapshot").Msg("failed to commit snapshot")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Int("records", len(records)).Msg("snapshot saved")
	return nil
}

// LoadSnapshot returns the stored records in their saved order.
func (s *snapshotRepository) LoadSnapshot(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to query snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		var (
			r         models.Record
			createdAt int64
			revealed  sql.NullInt64
		)
		if err = rows.Scan(
			&r.ID, &r.Label, &r.Weight, &r.Category, &createdAt,
			&r.Owner, &r.Verified, &revealed, &r.PublicTag1, &r.PublicTag2,
		); err != nil {
			log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		r.CreatedAt = time.Unix(createdAt, 0).UTC()
		if revealed.Valid {
			v := revealed.Int64
			r.RevealedValue = &v
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
