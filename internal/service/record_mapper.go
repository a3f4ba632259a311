package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

// defaultSemesterTag is written as the second public value of new records.
const defaultSemesterTag = 1

// describeRecord builds the plaintext description stored with a record. The
// category is recovered from it on reload.
func describeRecord(label, category string) string {
	return fmt.Sprintf("Grade for %s - %s", label, category)
}

// categoryOf recovers the category from the description written by
// describeRecord, falling back to "Semester N" from the second public value.
func categoryOf(lr models.LedgerRecord) string {
	prefix := "Grade for " + lr.Name + " - "
	if cat, ok := strings.CutPrefix(lr.Description, prefix); ok && strings.TrimSpace(cat) != "" {
		return cat
	}

	n := lr.PublicValue2
	if n <= 0 {
		n = defaultSemesterTag
	}
	return fmt.Sprintf("Semester %d", n)
}

// recordFromLedger converts raw contract data into a reconciled record. The
// weight is the first public value, with 0 read as 1. The revealed value is
// set only for verified records.
func recordFromLedger(lr models.LedgerRecord) models.Record {
	weight := lr.PublicValue1
	if weight <= 0 {
		weight = models.MinWeight
	}

	r := models.Record{
		ID:         lr.ID,
		Label:      lr.Name,
		Weight:     weight,
		Category:   categoryOf(lr),
		CreatedAt:  time.Unix(lr.Timestamp, 0).UTC(),
		Owner:      lr.Creator,
		Verified:   lr.IsVerified,
		PublicTag1: lr.PublicValue1,
		PublicTag2: lr.PublicValue2,
	}
	if lr.IsVerified {
		v := lr.DecryptedValue
		r.RevealedValue = &v
	}
	return r
}

// createRequest builds the contract call for a new record.
func createRequest(id string, in models.NewRecordInput, enc models.EncryptedInput) models.CreateRecordRequest {
	return models.CreateRecordRequest{
		ID:             id,
		Name:           strings.TrimSpace(in.Label),
		EncryptedValue: enc.Handle,
		InputProof:     enc.InputProof,
		PublicValue1:   in.Weight,
		PublicValue2:   defaultSemesterTag,
		Description:    describeRecord(strings.TrimSpace(in.Label), strings.TrimSpace(in.Category)),
	}
}
