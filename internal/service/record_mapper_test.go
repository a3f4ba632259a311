package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

func TestRecordFromLedger(t *testing.T) {
	tests := []struct {
		name         string
		in           models.LedgerRecord
		wantWeight   int64
		wantCategory string
		wantValue    *int64
	}{
		{
			name: "category from description",
			in: models.LedgerRecord{
				ID: "a", Name: "Math", PublicValue1: 3, PublicValue2: 1,
				Description: "Grade for Math - Spring 2026",
			},
			wantWeight:   3,
			wantCategory: "Spring 2026",
		},
		{
			name: "category from semester tag",
			in: models.LedgerRecord{
				ID: "b", Name: "Art", PublicValue1: 2, PublicValue2: 3, Description: "imported",
			},
			wantWeight:   2,
			wantCategory: "Semester 3",
		},
		{
			name:         "zero weight and tag default to one",
			in:           models.LedgerRecord{ID: "c", Name: "Gym"},
			wantWeight:   1,
			wantCategory: "Semester 1",
		},
		{
			name: "verified carries value",
			in: models.LedgerRecord{
				ID: "d", Name: "Math", PublicValue1: 4, IsVerified: true, DecryptedValue: 0,
				Description: "Grade for Math - Semester 2",
			},
			wantWeight:   4,
			wantCategory: "Semester 2",
			wantValue:    new(int64),
		},
		{
			name: "unverified drops stale value",
			in: models.LedgerRecord{
				ID: "e", Name: "Math", PublicValue1: 4, DecryptedValue: 55,
			},
			wantWeight:   4,
			wantCategory: "Semester 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := recordFromLedger(tt.in)
			assert.Equal(t, tt.wantWeight, r.Weight)
			assert.Equal(t, tt.wantCategory, r.Category)
			assert.Equal(t, tt.in.IsVerified, r.Verified)
			assert.Equal(t, tt.in.PublicValue1, r.PublicTag1)
			if tt.wantValue == nil {
				assert.Nil(t, r.RevealedValue)
			} else {
				require.NotNil(t, r.RevealedValue)
				assert.Equal(t, *tt.wantValue, *r.RevealedValue)
			}
		})
	}
}

func TestRecordFromLedger_Timestamp(t *testing.T) {
	r := recordFromLedger(models.LedgerRecord{ID: "a", Timestamp: 1700000000})
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), r.CreatedAt)
}

func TestCreateRequest(t *testing.T) {
	req := createRequest("course-1", models.NewRecordInput{
		Label: " Physics ", Weight: 4, Category: "Fall", RawValue: 70,
	}, models.EncryptedInput{Handle: "0xh", InputProof: "0xp"})

	assert.Equal(t, models.CreateRecordRequest{
		ID:             "course-1",
		Name:           "Physics",
		EncryptedValue: "0xh",
		InputProof:     "0xp",
		PublicValue1:   4,
		PublicValue2:   1,
		Description:    "Grade for Physics - Fall",
	}, req)
}
