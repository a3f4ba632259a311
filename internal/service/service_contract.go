// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-transcript-keeper/internal/crypto"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/metrics"
	"github.com/MKhiriev/go-transcript-keeper/internal/store"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// DefaultBlockSize is the maximum number of transactions settled per block.
const DefaultBlockSize = 64

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type contractService struct {
	ledger    store.LedgerRepository
	keys      crypto.KeyRing
	pinger    Pinger
	contract  string
	blockSize uint64
	now       func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewContractService creates the contract executor. m may be nil.
func NewContractService(ledger store.LedgerRepository, keys crypto.KeyRing, pinger Pinger, contract string, m *metrics.Metrics, logger *logger.Logger) ContractService {
	return &contractService{
		ledger:    ledger,
		keys:      keys,
		pinger:    pinger,
		contract:  contract,
		blockSize: DefaultBlockSize,
		now:       time.Now,
		metrics:   m,
		logger:    logger,
	}
}

// SubmitCreate runs the checks a node performs when estimating a call, so
// obvious reverts are reported before the transaction is queued. They are
// repeated when the block is mined.
func (s *contractService) SubmitCreate(ctx context.Context, req models.CreateRecordRequest) (models.TxReceipt, error) {
	sender, ok := utils.GetSenderFromContext(ctx)
	if !ok {
		return models.TxReceipt{}, ErrSenderRequired
	}

	if !s.keys.VerifyInputProof(s.contract, sender, req.EncryptedValue, req.InputProof) {
		return models.TxReceipt{}, revert(models.ReasonInvalidInputProof)
	}

	exists, err := s.ledger.RecordExists(ctx, req.ID)
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("check record %s: %w", req.ID, err)
	}
	if exists {
		return models.TxReceipt{}, revert(models.ReasonRecordExists)
	}

	return s.enqueue(ctx, models.TxCreateRecord, sender, req)
}

func (s *contractService) SubmitVerify(ctx context.Context, req models.VerifyDecryptionRequest) (models.TxReceipt, error) {
	sender, ok := utils.GetSenderFromContext(ctx)
	if !ok {
		return models.TxReceipt{}, ErrSenderRequired
	}

	record, err := s.ledger.GetRecord(ctx, req.ID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.TxReceipt{}, revert(models.ReasonRecordNotFound)
	}
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("check record %s: %w", req.ID, err)
	}
	if record.IsVerified {
		return models.TxReceipt{}, revert(models.ReasonAlreadyVerified)
	}

	return s.enqueue(ctx, models.TxVerifyDecryption, sender, req)
}

func (s *contractService) enqueue(ctx context.Context, kind models.TxKind, sender string, payload any) (models.TxReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	tx := models.Transaction{
		TxReceipt: models.TxReceipt{
			Hash:        txHash(sender, kind, body),
			Kind:        kind,
			Status:      models.TxPending,
			SubmittedAt: s.now().UTC(),
		},
		Sender:  sender,
		Payload: body,
	}

	if err = s.ledger.EnqueueTx(ctx, tx); err != nil {
		return models.TxReceipt{}, fmt.Errorf("enqueue %s: %w", kind, err)
	}
	s.metrics.IncrementSubmitted(string(kind))

	s.logger.Info().
		Str("func", "contractService.enqueue").
		Str("tx_hash", tx.Hash).
		Str("kind", string(kind)).
		Str("sender", sender).
		Msg("transaction queued")

	return tx.TxReceipt, nil
}

// txHash identifies a submission. The random nonce makes two identical
// submissions distinct transactions.
func txHash(sender string, kind models.TxKind, body []byte) string {
	h := sha256.New()
	h.Write([]byte(sender))
	h.Write([]byte(kind))
	h.Write(body)
	h.Write([]byte(uuid.NewString()))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

func (s *contractService) ListRecordIDs(ctx context.Context) ([]string, error) {
	return s.ledger.ListRecordIDs(ctx)
}

func (s *contractService) GetRecord(ctx context.Context, id string) (models.LedgerRecord, error) {
	record, err := s.ledger.GetRecord(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.LedgerRecord{}, revert(models.ReasonRecordNotFound)
	}
	return record, err
}

func (s *contractService) GetHandle(ctx context.Context, id string) (string, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return "", err
	}
	return record.EncryptedValue, nil
}

func (s *contractService) GetTx(ctx context.Context, hash string) (models.TxReceipt, error) {
	receipt, err := s.ledger.GetTx(ctx, hash)
	if errors.Is(err, store.ErrTxNotFound) {
		return models.TxReceipt{}, ErrTxNotFound
	}
	return receipt, err
}

func (s *contractService) IsAvailable(ctx context.Context) bool {
	if s.pinger == nil {
		return true
	}
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "contractService.IsAvailable").Msg("ledger store unreachable")
		return false
	}
	return true
}

func (s *contractService) MineBlock(ctx context.Context) (int, error) {
	txs, err := s.ledger.PendingTxs(ctx, s.blockSize)
	if err != nil {
		return 0, fmt.Errorf("load pending transactions: %w", err)
	}
	if len(txs) == 0 {
		return 0, nil
	}

	latest, err := s.ledger.LatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("load latest block: %w", err)
	}
	block := latest + 1
	minedAt := s.now().UTC()

	settled := 0
	for _, tx := range txs {
		if err = s.apply(ctx, tx, block, minedAt); err != nil {
			return settled, fmt.Errorf("apply %s: %w", tx.Hash, err)
		}
		settled++
	}
	s.metrics.IncrementBlocks()

	s.logger.Debug().
		Str("func", "contractService.MineBlock").
		Int64("block", block).
		Int("transactions", settled).
		Msg("block mined")

	return settled, nil
}

func (s *contractService) apply(ctx context.Context, tx models.Transaction, block int64, minedAt time.Time) error {
	var err error
	switch tx.Kind {
	case models.TxCreateRecord:
		err = s.applyCreate(ctx, tx, block, minedAt)
	case models.TxVerifyDecryption:
		err = s.applyVerify(ctx, tx, block, minedAt)
	default:
		err = revert("unknown transaction kind " + string(tx.Kind))
	}

	status := models.TxConfirmed
	var rev *RevertError
	if errors.As(err, &rev) {
		s.logger.Info().
			Str("func", "contractService.apply").
			Str("tx_hash", tx.Hash).
			Str("reason", rev.Reason).
			Msg("transaction reverted")
		status = models.TxReverted
		err = s.ledger.RevertTx(ctx, tx.Hash, rev.Reason, block, minedAt)
	}
	if err == nil {
		s.metrics.IncrementSettled(string(tx.Kind), string(status))
	}

	// settled concurrently by another producer
	if errors.Is(err, store.ErrTxAlreadySettled) {
		return nil
	}
	return err
}

func (s *contractService) applyCreate(ctx context.Context, tx models.Transaction, block int64, minedAt time.Time) error {
	var req models.CreateRecordRequest
	if err := json.Unmarshal(tx.Payload, &req); err != nil {
		return revert("malformed payload")
	}

	if !s.keys.VerifyInputProof(s.contract, tx.Sender, req.EncryptedValue, req.InputProof) {
		return revert(models.ReasonInvalidInputProof)
	}

	record := models.LedgerRecord{
		ID:             req.ID,
		Name:           req.Name,
		EncryptedValue: req.EncryptedValue,
		PublicValue1:   req.PublicValue1,
		PublicValue2:   req.PublicValue2,
		Description:    req.Description,
		Creator:        tx.Sender,
		Timestamp:      minedAt.Unix(),
	}

	err := s.ledger.SettleCreate(ctx, tx.Hash, record, block, minedAt)
	if errors.Is(err, store.ErrRecordExists) {
		return revert(models.ReasonRecordExists)
	}
	return err
}

func (s *contractService) applyVerify(ctx context.Context, tx models.Transaction, block int64, minedAt time.Time) error {
	var req models.VerifyDecryptionRequest
	if err := json.Unmarshal(tx.Payload, &req); err != nil {
		return revert("malformed payload")
	}

	record, err := s.ledger.GetRecord(ctx, req.ID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return revert(models.ReasonRecordNotFound)
	}
	if err != nil {
		return err
	}
	if record.IsVerified {
		return revert(models.ReasonAlreadyVerified)
	}

	handles := []string{record.EncryptedValue}
	if !s.keys.VerifyDecryptionProof(s.contract, handles, req.AbiEncodedClearValues, req.DecryptionProof) {
		return revert(models.ReasonInvalidProof)
	}

	values, err := crypto.DecodeClearValues(req.AbiEncodedClearValues)
	if err != nil || len(values) != len(handles) {
		return revert(models.ReasonHandleMismatch)
	}

	err = s.ledger.SettleVerify(ctx, tx.Hash, req.ID, int64(values[0]), block, minedAt)
	switch {
	case errors.Is(err, store.ErrRecordAlreadyVerified):
		return revert(models.ReasonAlreadyVerified)
	case errors.Is(err, store.ErrRecordNotFound):
		return revert(models.ReasonRecordNotFound)
	}
	return err
}
