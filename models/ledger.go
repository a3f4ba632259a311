// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LedgerRecord is the raw record data returned by the ledger contract.
// Field names follow the contract's storage layout.
type LedgerRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EncryptedValue string `json:"encrypted_value"`
	PublicValue1   int64  `json:"public_value1"`
	PublicValue2   int64  `json:"public_value2"`
	Description    string `json:"description"`
	Creator        string `json:"creator"`
	Timestamp      int64  `json:"timestamp"`
	IsVerified     bool   `json:"is_verified"`
	DecryptedValue int64  `json:"decrypted_value"`
}

// CreateRecordRequest is the payload of the signer-bound create call.
type CreateRecordRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EncryptedValue string `json:"encrypted_value"`
	InputProof     string `json:"input_proof"`
	PublicValue1   int64  `json:"public_value1"`
	PublicValue2   int64  `json:"public_value2"`
	Description    string `json:"description"`
}

// VerifyDecryptionRequest is the payload of the signer-bound verify call.
type VerifyDecryptionRequest struct {
	ID                    string `json:"id"`
	AbiEncodedClearValues string `json:"abi_encoded_clear_values"`
	DecryptionProof       string `json:"decryption_proof"`
}

// TxStatus is the confirmation state of a submitted transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxReverted  TxStatus = "reverted"
)

// TxKind names the contract method a transaction invokes.
type TxKind string

const (
	TxCreateRecord     TxKind = "create_record"
	TxVerifyDecryption TxKind = "verify_decryption"
)

// TxReceipt describes a submitted transaction.
type TxReceipt struct {
	Hash        string     `json:"hash"`
	Kind        TxKind     `json:"kind"`
	Status      TxStatus   `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	BlockNumber int64      `json:"block_number,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	MinedAt     *time.Time `json:"mined_at,omitempty"`
}

// Transaction is a queued contract call as stored by the ledger.
type Transaction struct {
	TxReceipt
	Sender  string `json:"sender"`
	Payload []byte `json:"payload"`
}

// RecordIDsResponse lists every record id known to the ledger.
type RecordIDsResponse struct {
	IDs    []string `json:"ids"`
	Length int      `json:"length"`
}

// HandleResponse carries the ciphertext handle of one record.
type HandleResponse struct {
	Handle string `json:"handle"`
}

// AvailabilityResponse reports whether the confidential service is up.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Revert reasons of the transcript contract. Clients match on them to tell
// a lost race from a real rejection.
const (
	ReasonAlreadyVerified   = "Data already verified"
	ReasonInvalidProof      = "Invalid decryption proof"
	ReasonInvalidInputProof = "Invalid input proof"
	ReasonRecordExists      = "Record already exists"
	ReasonRecordNotFound    = "Record does not exist"
	ReasonHandleMismatch    = "Handle mismatch"
)
