package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

const snapshotTable = "snapshot_records"

// snapshotInsertChunk bounds the rows per INSERT to stay under SQLite's
// host parameter limit.
const snapshotInsertChunk = 500

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var snapshotColumns = []string{
	"position", "id", "label", "weight", "category", "created_at",
	"owner", "verified", "revealed_value", "public_tag1", "public_tag2",
}

func buildSelectSnapshotQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(snapshotColumns[1:]...).
		From(snapshotTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildClearSnapshotQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.Delete(snapshotTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertSnapshotQuery inserts records starting at position offset.
func buildInsertSnapshotQuery(records []models.Record, offset int) (string, []any, error) {
	builder := sqliteBuilder.Insert(snapshotTable).Columns(snapshotColumns...)
	for i, r := range records {
		var revealed any
		if r.RevealedValue != nil {
			revealed = *r.RevealedValue
		}
		builder = builder.Values(
			offset+i, r.ID, r.Label, r.Weight, r.Category, r.CreatedAt.Unix(),
			r.Owner, r.Verified, revealed, r.PublicTag1, r.PublicTag2,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
