// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive transcript client runtime.
//
// It ties the terminal UI to the record controller and keeps the periodic
// ledger reload running for as long as the UI is open.
package client
