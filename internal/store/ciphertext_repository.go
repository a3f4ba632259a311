package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

type ciphertextRepository struct {
	*DB
}

func NewCiphertextRepository(db *DB) CiphertextRepository {
	return &ciphertextRepository{DB: db}
}

// SaveCiphertext stores ct. Handles are content addressed, so saving the
// same handle twice is not an error.
func (c *ciphertextRepository) SaveCiphertext(ctx context.Context, ct models.Ciphertext) error {
	query, args, err := buildInsertCiphertextQuery(ct)
	if err != nil {
		return err
	}

	err = c.withRetry(ctx, func() error {
		_, execErr := c.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil && !isUniqueViolation(err) {
		logger.FromContext(ctx).Err(err).
			Str("func", "ciphertextRepository.SaveCiphertext").
			Str("handle", ct.Handle).
			Msg("failed to save ciphertext")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (c *ciphertextRepository) GetCiphertext(ctx context.Context, handle string) (models.Ciphertext, error) {
	query, args, err := buildGetCiphertextQuery(handle)
	if err != nil {
		return models.Ciphertext{}, err
	}

	var ct models.Ciphertext
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(
		&ct.Handle, &ct.ContractAddress, &ct.Owner, &ct.Data, &ct.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ciphertext{}, ErrCiphertextNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ciphertextRepository.GetCiphertext").
			Str("handle", handle).
			Msg("failed to get ciphertext")
		return models.Ciphertext{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return ct, nil
}
