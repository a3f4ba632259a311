// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GatewayParams are the public parameters fetched once during gateway
// initialization.
type GatewayParams struct {
	KeyID   string `json:"key_id"`
	ChainID int64  `json:"chain_id"`
}

// EncryptRequest asks the gateway to encrypt value for (contract, owner).
type EncryptRequest struct {
	ContractAddress string `json:"contract_address"`
	UserAddress     string `json:"user_address"`
	Value           uint64 `json:"value"`
}

// EncryptedInput is the ciphertext reference plus the proof that it was
// correctly formed for the (contract, owner) pair.
type EncryptedInput struct {
	// Handle references the ciphertext held by the gateway.
	Handle     string `json:"handle"`
	InputProof string `json:"input_proof"`
}

// PublicDecryptRequest asks the gateway for clear values and a proof that can
// be persisted on the ledger.
type PublicDecryptRequest struct {
	Handles         []string `json:"handles"`
	ContractAddress string   `json:"contract_address"`
}

// DecryptionResult is the outcome of a public decryption.
type DecryptionResult struct {
	ClearValues           map[string]uint64 `json:"clear_values"`
	AbiEncodedClearValues string            `json:"abi_encoded_clear_values"`
	DecryptionProof       string            `json:"decryption_proof"`
}

// UserDecryptRequest asks for a private decryption visible to the requesting
// user only. It travels with a wallet token signed by UserAddress.
type UserDecryptRequest struct {
	Handles         []string `json:"handles"`
	ContractAddress string   `json:"contract_address"`
	UserAddress     string   `json:"user_address"`
}

// UserDecryptResponse carries clear values without any persistence proof.
type UserDecryptResponse struct {
	ClearValues map[string]uint64 `json:"clear_values"`
}

// Ciphertext is an encrypted value held by the gateway, addressed by handle
// and bound to the (contract, owner) pair it was produced for.
type Ciphertext struct {
	Handle          string
	ContractAddress string
	Owner           string
	Data            []byte
	CreatedAt       time.Time
}
