// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the transcript client
// and the ledger daemon.
//
// Status* constants are shown to the user in the client's status banner.
// Msg* constants are written into ledger HTTP error bodies and matched by the
// client adapter, so both sides must use these values.
package app

// User-facing status banner messages.
const (
	StatusAdding         = "Adding encrypted transcript..."
	StatusWaitingConfirm = "Waiting for confirmation..."
	StatusAdded          = "Transcript added successfully!"
	StatusVerifying      = "Verifying grade..."
	StatusDecrypting     = "Decrypting grade..."
	StatusDecrypted      = "Grade decrypted successfully!"
	StatusRevealedLocal  = "Grade decrypted locally (not verified)"
	StatusAlreadyVerify  = "Grade already verified"
	StatusAvailable      = "FHE system is available!"
	StatusUnavailable    = "FHE system is not available"
	StatusReloaded       = "Transcripts refreshed"
	StatusLoading        = "Loading transcripts..."
	StatusCopied         = "Grade copied to clipboard"
	StatusNothingToCopy  = "Nothing to copy: grade is still encrypted"
	StatusCopyFailed     = "Could not access the clipboard"

	StatusTxRejected       = "Transaction rejected"
	StatusSubmitFailed     = "Submission failed"
	StatusDecryptFailed    = "Decryption failed"
	StatusProofRejected    = "Decryption proof rejected"
	StatusGatewayDown      = "Encryption service unavailable"
	StatusAvailCheckFailed = "Availability check failed"
	StatusInitFailed       = "FHEVM initialization failed"
	StatusLoadFailed       = "Failed to load data"
	StatusTimedOut         = "Operation timed out, please retry"
	StatusInFlight         = "Operation already in progress for this record"
	StatusNotFound         = "Transcript not found"
)

// Ledger API error reasons.
const (
	// MsgInvalidDataProvided is returned when a body cannot be decoded or
	// fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"

	// MsgInvalidWalletToken is returned when the wallet token is missing,
	// malformed, expired, or does not match the request body.
	MsgInvalidWalletToken = "invalid wallet token"

	// MsgAccessDenied is returned when the signer may not read the
	// requested ciphertext.
	MsgAccessDenied = "access denied"

	MsgTxNotFound         = "transaction not found"
	MsgCiphertextNotFound = "ciphertext not found"

	// MsgDecryptionFailed is returned when the gateway cannot produce clear
	// values for the requested handles.
	MsgDecryptionFailed = "decryption failed"
)
