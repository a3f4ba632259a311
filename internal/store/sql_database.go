package store

import (
	"database/sql"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
)

// DB wraps a database handle together with the error classifier matching
// its driver. Repositories embed it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// noRetryClassifier is used for SQLite, whose errors are never transient
// for a single-process client.
type noRetryClassifier struct{}

func (noRetryClassifier) Classify(error) ErrorClassification { return NonRetryable }
