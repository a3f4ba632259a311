package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var snapshotSelectColumns = []string{
	"id", "label", "weight", "category", "created_at",
	"owner", "verified", "revealed_value", "public_tag1", "public_tag2",
}

func TestSnapshotRepository_SaveSnapshot(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name    string
		records []models.Record
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:    "success",
			records: records,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM snapshot_records")).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("INSERT INTO snapshot_records").
					WithArgs(
						int64(0), "course-a", "Algebra", int64(3), "Semester 1", records[0].CreatedAt.Unix(),
						"0xabc", false, nil, int64(3), int64(1),
						int64(1), "course-b", "Biology", int64(4), "Semester 2", records[1].CreatedAt.Unix(),
						"0xabc", true, int64(91), int64(4), int64(1),
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:    "empty set only clears",
			records: nil,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM snapshot_records")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name:    "begin fails",
			records: records,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name:    "insert fails and rolls back",
			records: records,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM snapshot_records").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO snapshot_records").
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:    "commit fails",
			records: records,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM snapshot_records").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO snapshot_records").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit().WillReturnError(errors.New("io error"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewSnapshotRepository(newDBFromSQL(db))
			err := repo.SaveSnapshot(testContext(), tt.records)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSnapshotRepository_LoadSnapshot(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success keeps order", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, label, weight, category, created_at, owner, verified, revealed_value, public_tag1, public_tag2 FROM snapshot_records ORDER BY position")).
			WillReturnRows(sqlmock.NewRows(snapshotSelectColumns).
				AddRow("course-a", "Algebra", int64(3), "Semester 1", created.Unix(), "0xabc", false, nil, int64(3), int64(1)).
				AddRow("course-b", "Biology", int64(4), "Semester 2", created.Unix(), "0xabc", true, int64(91), int64(4), int64(1)))

		repo := NewSnapshotRepository(newDBFromSQL(db))
		got, err := repo.LoadSnapshot(testContext())
		require.NoError(t, err)
		assert.Equal(t, sampleRecords(), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT (.+) FROM snapshot_records").
			WillReturnRows(sqlmock.NewRows(snapshotSelectColumns))

		got, err := NewSnapshotRepository(newDBFromSQL(db)).LoadSnapshot(testContext())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT (.+) FROM snapshot_records").
			WillReturnError(errors.New("no such table"))

		_, err := NewSnapshotRepository(newDBFromSQL(db)).LoadSnapshot(testContext())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT (.+) FROM snapshot_records").
			WillReturnRows(sqlmock.NewRows(snapshotSelectColumns).
				AddRow("course-a", "Algebra", int64(3), "Semester 1", created.Unix(), "0xabc", false, nil, int64(3), int64(1)).
				RowError(0, errors.New("corrupt page")))

		_, err := NewSnapshotRepository(newDBFromSQL(db)).LoadSnapshot(testContext())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}
