package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/crypto"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

type gatewayService struct {
	ciphertexts store.CiphertextRepository
	keys        crypto.KeyRing
	contract    string
	chainID     int64

	logger *logger.Logger
}

func NewGatewayService(ciphertexts store.CiphertextRepository, keys crypto.KeyRing, contract string, chainID int64, logger *logger.Logger) GatewayService {
	return &gatewayService{
		ciphertexts: ciphertexts,
		keys:        keys,
		contract:    contract,
		chainID:     chainID,
		logger:      logger,
	}
}

func (g *gatewayService) Params(ctx context.Context) models.GatewayParams {
	return models.GatewayParams{KeyID: g.keys.KeyID(), ChainID: g.chainID}
}

func (g *gatewayService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	if err := g.checkContract(req.ContractAddress); err != nil {
		return models.EncryptedInput{}, err
	}
	if strings.TrimSpace(req.UserAddress) == "" {
		return models.EncryptedInput{}, fmt.Errorf("%w: user address is required", ErrValidation)
	}

	sealed, err := g.keys.Seal(req.ContractAddress, req.UserAddress, req.Value)
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("seal value: %w", err)
	}

	err = g.ciphertexts.SaveCiphertext(ctx, models.Ciphertext{
		Handle:          sealed.Handle,
		ContractAddress: req.ContractAddress,
		Owner:           req.UserAddress,
		Data:            sealed.Blob,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("save ciphertext: %w", err)
	}

	return models.EncryptedInput{Handle: sealed.Handle, InputProof: sealed.InputProof}, nil
}

func (g *gatewayService) PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error) {
	if err := g.checkContract(req.ContractAddress); err != nil {
		return models.DecryptionResult{}, err
	}

	values, err := g.open(ctx, req.Handles, "")
	if err != nil {
		return models.DecryptionResult{}, err
	}

	ordered := make([]uint64, len(req.Handles))
	for i, h := range req.Handles {
		ordered[i] = values[h]
	}
	abi := crypto.EncodeClearValues(ordered)

	return models.DecryptionResult{
		ClearValues:           values,
		AbiEncodedClearValues: abi,
		DecryptionProof:       g.keys.DecryptionProof(req.ContractAddress, req.Handles, abi),
	}, nil
}

func (g *gatewayService) UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error) {
	if err := g.checkContract(req.ContractAddress); err != nil {
		return models.UserDecryptResponse{}, err
	}

	sender, ok := utils.GetSenderFromContext(ctx)
	if !ok {
		return models.UserDecryptResponse{}, ErrSenderRequired
	}
	if !sameAddress(sender, req.UserAddress) {
		return models.UserDecryptResponse{}, fmt.Errorf("%w: token signed by %s", ErrAccessDenied, sender)
	}

	values, err := g.open(ctx, req.Handles, sender)
	if err != nil {
		return models.UserDecryptResponse{}, err
	}

	return models.UserDecryptResponse{ClearValues: values}, nil
}

// open decrypts handles. A non-empty owner restricts access to ciphertexts
// sealed for that address.
func (g *gatewayService) open(ctx context.Context, handles []string, owner string) (map[string]uint64, error) {
	if len(handles) == 0 {
		return nil, fmt.Errorf("%w: no handles given", ErrValidation)
	}

	values := make(map[string]uint64, len(handles))
	for _, h := range handles {
		ct, err := g.ciphertexts.GetCiphertext(ctx, h)
		if errors.Is(err, store.ErrCiphertextNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, h)
		}
		if err != nil {
			return nil, fmt.Errorf("load ciphertext %s: %w", h, err)
		}

		if !sameAddress(ct.ContractAddress, g.contract) {
			return nil, fmt.Errorf("%w: ciphertext %s", ErrContractMismatch, h)
		}
		if owner != "" && !sameAddress(ct.Owner, owner) {
			return nil, fmt.Errorf("%w: ciphertext %s", ErrAccessDenied, h)
		}

		v, err := g.keys.Open(ct.ContractAddress, ct.Owner, ct.Data)
		if err != nil {
			g.logger.Err(err).Str("func", "gatewayService.open").Str("handle", h).Msg("failed to open ciphertext")
			return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
		}
		values[h] = v
	}

	return values, nil
}

func (g *gatewayService) checkContract(addr string) error {
	if !sameAddress(addr, g.contract) {
		return fmt.Errorf("%w: %s", ErrContractMismatch, addr)
	}
	return nil
}

func sameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
