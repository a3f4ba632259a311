// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind is the visual class of a transient status banner.
type StatusKind string

const (
	StatusPending StatusKind = "pending"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// FailureKind classifies why a lifecycle operation did not succeed.
type FailureKind string

const (
	FailureNone               FailureKind = ""
	FailureValidation         FailureKind = "validation"
	FailureWalletDeclined     FailureKind = "wallet_declined"
	FailureGatewayUnavailable FailureKind = "gateway_unavailable"
	FailureProofRejected      FailureKind = "proof_rejected"
	FailureNetworkOrLedger    FailureKind = "network_or_ledger"
	FailureTimeout            FailureKind = "timeout"
	FailureInFlight           FailureKind = "in_flight"
	FailureNotFound           FailureKind = "not_found"
)

// Status is the uniform signal presentation code receives instead of errors.
// It is display-only and never part of reconciled state.
type Status struct {
	Visible bool
	Kind    StatusKind
	Failure FailureKind
	Message string
}

// HiddenStatus is the zero banner.
func HiddenStatus() Status {
	return Status{Kind: StatusPending}
}
