// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input and ledger payloads before they reach
// the network or the contract state.
//
// A Validator accepts any supported value and an optional list of field
// names. When fields are given only those fields are checked.
package validators

import "context"

// Validator validates input, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
