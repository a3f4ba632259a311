package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel         = errors.New("course name is required")
	ErrLabelTooLong       = errors.New("course name is too long")
	ErrGradeOutOfRange    = errors.New("grade must be between 0 and 100")
	ErrWeightOutOfRange   = errors.New("credit hours must be between 1 and 10")
	ErrEmptyCategory      = errors.New("semester is required")
	ErrEmptyOwner         = errors.New("owner address is required")
	ErrEmptyRecordID      = errors.New("record id is required")
	ErrEmptyCiphertext    = errors.New("encrypted value is required")
	ErrEmptyProof         = errors.New("proof is required")
	ErrEmptyClearValues   = errors.New("clear values are required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description is too long")
)
