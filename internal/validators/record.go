package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

const (
	FieldOwner       = "owner"
	FieldLabel       = "label"
	FieldWeight      = "weight"
	FieldCategory    = "category"
	FieldRawValue    = "raw_value"
	FieldRecordID    = "id"
	FieldCiphertext  = "encrypted_value"
	FieldInputProof  = "input_proof"
	FieldDescription = "description"
	FieldClearValues = "abi_encoded_clear_values"
	FieldProof       = "decryption_proof"
)

// Length limits on free text stored in plaintext next to the ciphertext.
const (
	MaxLabelLength       = 128
	MaxDescriptionLength = 512
)

var newRecordFields = []string{FieldOwner, FieldLabel, FieldWeight, FieldCategory, FieldRawValue}
var createRequestFields = []string{FieldRecordID, FieldLabel, FieldCiphertext, FieldInputProof, FieldDescription}
var verifyRequestFields = []string{FieldRecordID, FieldClearValues, FieldProof}

// RecordValidator validates record creation input on the client and the
// contract call payloads on the ledger.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewRecordInput:
		return v.validateNewRecord(value, fields...)
	case *models.NewRecordInput:
		return v.validateNewRecord(*value, fields...)

	case models.CreateRecordRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateRecordRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.VerifyDecryptionRequest:
		return v.validateVerifyRequest(value, fields...)
	case *models.VerifyDecryptionRequest:
		return v.validateVerifyRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateNewRecord(in models.NewRecordInput, fields ...string) error {
	fields, err := scope(fields, newRecordFields)
	if err != nil {
		return err
	}

	for _, field := range fields {
		switch field {
		case FieldOwner:
			if strings.TrimSpace(in.Owner) == "" {
				return ErrEmptyOwner
			}
		case FieldLabel:
			if err = validateLabel(in.Label); err != nil {
				return err
			}
		case FieldWeight:
			if in.Weight < models.MinWeight || in.Weight > models.MaxWeight {
				return ErrWeightOutOfRange
			}
		case FieldCategory:
			if strings.TrimSpace(in.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldRawValue:
			if in.RawValue < models.MinGrade || in.RawValue > models.MaxGrade {
				return ErrGradeOutOfRange
			}
		}
	}
	return nil
}

func (v *RecordValidator) validateCreateRequest(req models.CreateRecordRequest, fields ...string) error {
	fields, err := scope(fields, createRequestFields)
	if err != nil {
		return err
	}

	for _, field := range fields {
		switch field {
		case FieldRecordID:
			if strings.TrimSpace(req.ID) == "" {
				return ErrEmptyRecordID
			}
		case FieldLabel:
			if err = validateLabel(req.Name); err != nil {
				return err
			}
		case FieldCiphertext:
			if req.EncryptedValue == "" {
				return ErrEmptyCiphertext
			}
		case FieldInputProof:
			if req.InputProof == "" {
				return ErrEmptyProof
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		}
	}
	return nil
}

func (v *RecordValidator) validateVerifyRequest(req models.VerifyDecryptionRequest, fields ...string) error {
	fields, err := scope(fields, verifyRequestFields)
	if err != nil {
		return err
	}

	for _, field := range fields {
		switch field {
		case FieldRecordID:
			if strings.TrimSpace(req.ID) == "" {
				return ErrEmptyRecordID
			}
		case FieldClearValues:
			if req.AbiEncodedClearValues == "" {
				return ErrEmptyClearValues
			}
		case FieldProof:
			if req.DecryptionProof == "" {
				return ErrEmptyProof
			}
		}
	}
	return nil
}

func validateLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	return nil
}

// scope returns the fields to check: all of known when fields is empty,
// otherwise fields after checking each one is known.
func scope(fields, known []string) ([]string, error) {
	if len(fields) == 0 {
		return known, nil
	}
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return fields, nil
}
