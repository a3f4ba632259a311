// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"

	"github.com/google/uuid"
)

// RecordIDPrefix starts every record id.
const RecordIDPrefix = "course-"

// RecordIDGenerator issues time-ordered record ids. UUIDv7 carries a
// millisecond timestamp plus a monotonic sub-millisecond sequence, so two ids
// generated in the same millisecond still differ.
type RecordIDGenerator struct {
	mu   sync.Mutex
	last string
}

func NewRecordIDGenerator() *RecordIDGenerator {
	return &RecordIDGenerator{}
}

// Generate returns a fresh id, never equal to the previous one.
func (g *RecordIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := RecordIDPrefix + newUUID()
		if id != g.last {
			g.last = id
			return id
		}
	}
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewTraceID returns a random id for request tracing.
func NewTraceID() string {
	return uuid.NewString()
}
