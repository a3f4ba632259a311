package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-transcript-keeper/internal/validators"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// ContractValidationService rejects malformed contract calls before they
// reach the transaction pool.
type ContractValidationService struct {
	ContractService
	validator validators.Validator
}

func NewContractValidationService() ContractServiceWrapper {
	return &ContractValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *ContractValidationService) SubmitCreate(ctx context.Context, req models.CreateRecordRequest) (models.TxReceipt, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TxReceipt{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.ContractService.SubmitCreate(ctx, req)
}

func (v *ContractValidationService) SubmitVerify(ctx context.Context, req models.VerifyDecryptionRequest) (models.TxReceipt, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TxReceipt{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.ContractService.SubmitVerify(ctx, req)
}

func (v *ContractValidationService) GetRecord(ctx context.Context, id string) (models.LedgerRecord, error) {
	if id == "" {
		return models.LedgerRecord{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyRecordID)
	}
	return v.ContractService.GetRecord(ctx, id)
}

func (v *ContractValidationService) Wrap(inner ContractService) ContractService {
	v.ContractService = inner
	return v
}
