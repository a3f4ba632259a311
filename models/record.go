// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Accepted ranges for user-supplied record values. Grades are percentages,
// weights are credit hours.
const (
	MinGrade  int64 = 0
	MaxGrade  int64 = 100
	MinWeight int64 = 1
	MaxWeight int64 = 10
)

// RecordState is the client-visible lifecycle position of a record.
type RecordState int

const (
	// StateEncrypted means no plaintext is known to the client.
	StateEncrypted RecordState = iota
	// StateLocallyRevealed means the client decrypted the value for itself
	// but the value was never proven on the ledger.
	StateLocallyRevealed
	// StateVerified means the decrypted value was persisted on the ledger
	// with an accepted proof. Terminal.
	StateVerified
)

func (s RecordState) String() string {
	switch s {
	case StateEncrypted:
		return "encrypted"
	case StateLocallyRevealed:
		return "locally revealed"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// Record is one confidential transcript entry as reconciled from the ledger.
type Record struct {
	// ID is the client-generated identifier, unique within the ledger.
	ID string `json:"id"`

	// Label is the human-readable course name. Immutable after creation.
	Label string `json:"label"`

	// Weight is the number of credit hours used in weighted aggregation.
	Weight int64 `json:"weight"`

	// Category is the semester tag. Used for filtering only.
	Category string `json:"category"`

	// CreatedAt is the ledger timestamp of the creating transaction.
	CreatedAt time.Time `json:"created_at"`

	// Owner is the address of the submitting principal.
	Owner string `json:"owner"`

	// Verified is true once a decryption was proven and persisted on-chain.
	Verified bool `json:"verified"`

	// RevealedValue is the ledger-attested grade. Nil unless Verified.
	RevealedValue *int64 `json:"revealed_value,omitempty"`

	// PublicTag1 and PublicTag2 are plaintext auxiliaries stored next to
	// the ciphertext.
	PublicTag1 int64 `json:"public_tag1"`
	PublicTag2 int64 `json:"public_tag2"`
}

// State reports the lifecycle state the ledger attests to. Provisional local
// reveals are not part of a Record; see [RecordView].
func (r Record) State() RecordState {
	if r.Verified {
		return StateVerified
	}
	return StateEncrypted
}

// AuthoritativeValue returns the revealed value only when the ledger has
// verified it.
func (r Record) AuthoritativeValue() (int64, bool) {
	if !r.Verified || r.RevealedValue == nil {
		return 0, false
	}
	return *r.RevealedValue, true
}

// RecordView combines a reconciled record with an optional provisional value
// decrypted by this client only. It is what presentation code renders.
type RecordView struct {
	Record

	// State is the effective lifecycle state, including local reveals.
	State RecordState

	// Value is the value to display, nil when nothing is known.
	Value *int64

	// Authoritative is false for provisional values.
	Authoritative bool
}

// NewRecordView builds the view of r. provisional is ignored for verified
// records, whose ledger value always wins.
func NewRecordView(r Record, provisional *int64) RecordView {
	view := RecordView{Record: r, State: StateEncrypted}

	switch {
	case r.Verified:
		view.State = StateVerified
		view.Authoritative = true
		if r.RevealedValue != nil {
			v := *r.RevealedValue
			view.Value = &v
		}
	case provisional != nil:
		v := *provisional
		view.State = StateLocallyRevealed
		view.Value = &v
	}

	return view
}

// NewRecordInput is the user-supplied data for a new record.
type NewRecordInput struct {
	Owner    string
	Label    string
	Weight   int64
	Category string
	RawValue int64
}
