// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
	"github.com/MKhiriev/go-transcript-keeper/internal/app"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// operation names a controller entry point for status wording.
type operation int

const (
	opCreate operation = iota
	opReveal
	opRevealLocal
	opReload
	opAvailability
	opInit
)

// mapLedgerError translates a ledger transport error into a failure class.
// [adapter.ErrAlreadyVerified] is passed through untouched because callers
// treat it as success.
func mapLedgerError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrAlreadyVerified):
		return err
	case isDeadline(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, adapter.ErrWalletDeclined):
		return fmt.Errorf("%w: %w", ErrWalletDeclined, err)
	case errors.Is(err, adapter.ErrProofRejected):
		return fmt.Errorf("%w: %w", ErrProofRejected, err)
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrNetworkOrLedger, err)
}

// mapGatewayError translates a relayer error into a failure class. Anything
// that is neither a timeout nor a declined signature makes the gateway
// unavailable for this operation.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isDeadline(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, adapter.ErrWalletDeclined):
		return fmt.Errorf("%w: %w", ErrWalletDeclined, err)
	}

	return fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Classify returns the failure kind of an error produced by this package.
func Classify(err error) models.FailureKind {
	switch {
	case err == nil:
		return models.FailureNone
	case errors.Is(err, ErrValidation):
		return models.FailureValidation
	case errors.Is(err, ErrWalletDeclined):
		return models.FailureWalletDeclined
	case errors.Is(err, ErrGatewayUnavailable):
		return models.FailureGatewayUnavailable
	case errors.Is(err, ErrProofRejected):
		return models.FailureProofRejected
	case errors.Is(err, ErrTimeout):
		return models.FailureTimeout
	case errors.Is(err, ErrInFlight):
		return models.FailureInFlight
	case errors.Is(err, ErrRecordNotFound):
		return models.FailureNotFound
	}
	return models.FailureNetworkOrLedger
}

// failureMessage picks the banner text for a failed operation.
func failureMessage(op operation, err error) string {
	switch Classify(err) {
	case models.FailureValidation:
		// "validation failed: <cause>", the cause is already user-facing
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			if errs := multi.Unwrap(); len(errs) == 2 {
				return errs[1].Error()
			}
		}
		return err.Error()
	case models.FailureWalletDeclined:
		return app.StatusTxRejected
	case models.FailureGatewayUnavailable:
		if op == opInit {
			return app.StatusInitFailed
		}
		return app.StatusGatewayDown
	case models.FailureProofRejected:
		return app.StatusProofRejected
	case models.FailureTimeout:
		return app.StatusTimedOut
	case models.FailureInFlight:
		return app.StatusInFlight
	case models.FailureNotFound:
		return app.StatusNotFound
	}

	switch op {
	case opCreate:
		return app.StatusSubmitFailed
	case opReveal, opRevealLocal:
		return app.StatusDecryptFailed
	case opAvailability:
		return app.StatusAvailCheckFailed
	case opInit:
		return app.StatusInitFailed
	default:
		return app.StatusLoadFailed
	}
}

func (op operation) String() string {
	switch op {
	case opCreate:
		return "create"
	case opReveal:
		return "reveal"
	case opRevealLocal:
		return "reveal_local"
	case opReload:
		return "reload"
	case opAvailability:
		return "availability"
	case opInit:
		return "init"
	}
	return "unknown"
}
