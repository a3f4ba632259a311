// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the collaborators the
// transcript client depends on: the ledger contract (read-only and
// signer-bound), the encryption/decryption relayer, and the wallet that
// signs writes.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// contract revert reasons by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrAlreadyVerified]
// for a lost verification race).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerReader is the read-only view of the transcript contract.
type LedgerReader interface {
	// ListRecordIDs returns every record id in creation order.
	ListRecordIDs(ctx context.Context) ([]string, error)

	// GetRecord returns the raw contract data of one record. Returns
	// [ErrNotFound] (wrapped) when id is unknown.
	GetRecord(ctx context.Context, id string) (models.LedgerRecord, error)

	// GetCiphertextHandle returns the handle of the encrypted value of id.
	GetCiphertextHandle(ctx context.Context, id string) (string, error)

	// IsServiceAvailable reports whether the confidential service is up.
	IsServiceAvailable(ctx context.Context) (bool, error)
}

// LedgerWriter submits signer-bound transactions. Both methods return once
// the transaction is accepted into the pool; completion is defined by
// [PendingTx.AwaitConfirmation].
//
// A user refusing to sign yields [ErrWalletDeclined] (wrapped).
type LedgerWriter interface {
	// CreateRecord submits a new encrypted record.
	CreateRecord(ctx context.Context, req models.CreateRecordRequest) (PendingTx, error)

	// VerifyDecryption submits a clear value and its decryption proof for
	// persistence on the ledger.
	VerifyDecryption(ctx context.Context, req models.VerifyDecryptionRequest) (PendingTx, error)
}

// LedgerClient combines both views of the contract.
type LedgerClient interface {
	LedgerReader
	LedgerWriter
}

// PendingTx is a submitted, not yet confirmed transaction.
type PendingTx interface {
	// Hash identifies the transaction.
	Hash() string

	// AwaitConfirmation blocks until the transaction is mined. A reverted
	// transaction yields an error mapped from its revert reason, e.g.
	// [ErrAlreadyVerified] or [ErrProofRejected].
	AwaitConfirmation(ctx context.Context) (models.TxReceipt, error)
}

// EncryptionGateway turns plaintext integers into ciphertext handles bound to
// a (contract, owner) pair.
type EncryptionGateway interface {
	// Init performs the one-time gateway initialization. It is idempotent.
	Init(ctx context.Context) error

	// Initialized reports whether Init has completed successfully.
	Initialized() bool

	// Encrypt returns a handle and an input proof for req.Value. Fails with
	// [ErrGatewayNotInitialized] before Init.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)
}

// DecryptionGateway reveals ciphertexts.
//
// PublicDecrypt is the first phase of the verify protocol: it computes clear
// values and a proof but persists nothing. The second phase is a
// [PersistDecryption] handed the result.
type DecryptionGateway interface {
	// PublicDecrypt returns clear values keyed by handle plus a persistence
	// proof.
	PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error)

	// UserDecrypt returns clear values visible to the signing user only.
	UserDecrypt(ctx context.Context, handles []string, contractAddress string) (map[string]uint64, error)
}

// PersistDecryption submits a proven decryption to the ledger. It is bound to
// one record and usually wraps [LedgerWriter.VerifyDecryption].
type PersistDecryption func(ctx context.Context, abiEncodedClearValues, decryptionProof string) (PendingTx, error)

// Gateway is the relayer instance serving both encryption and decryption.
type Gateway interface {
	EncryptionGateway
	DecryptionGateway
}

// Signer is the client wallet.
type Signer interface {
	// Address is the wallet address used as record owner.
	Address() string

	// Sign authorises body for action. Returns [ErrWalletDeclined] when the
	// user refuses.
	Sign(ctx context.Context, action string, body []byte) (string, error)
}

// Approver asks the user to confirm a signature request. A false answer
// declines the request.
type Approver interface {
	Approve(ctx context.Context, action string) (bool, error)
}
