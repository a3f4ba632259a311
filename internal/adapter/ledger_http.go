package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

// Signature actions shown to the user by the wallet.
const (
	ActionCreateRecord     = "create record"
	ActionVerifyDecryption = "verify decryption"
	ActionUserDecrypt      = "decrypt for me"
)

type httpLedgerAdapter struct {
	client       *utils.HTTPClient
	signer       Signer
	pollInterval time.Duration

	logger *logger.Logger
}

// NewHTTPLedgerAdapter constructs the HTTP implementation of [LedgerReader]
// and [LedgerWriter]. Writes are authorised by signer.
//
// Returns an error if adapterCfg.LedgerURL cannot be parsed as a valid URL.
func NewHTTPLedgerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, signer Signer, log *logger.Logger) (LedgerClient, error) {
	client, err := newRestClient(adapterCfg.LedgerURL, adapterCfg.RequestTimeout, appCfg.HashKey, log)
	if err != nil {
		return nil, err
	}

	return &httpLedgerAdapter{
		client:       client,
		signer:       signer,
		pollInterval: adapterCfg.ConfirmPollInterval,
		logger:       log,
	}, nil
}

// ListRecordIDs implements [LedgerReader] via GET /api/records.
func (h *httpLedgerAdapter) ListRecordIDs(ctx context.Context) ([]string, error) {
	var ids models.RecordIDsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&ids).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list record ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return ids.IDs, nil
}

// GetRecord implements [LedgerReader] via GET /api/records/{id}.
func (h *httpLedgerAdapter) GetRecord(ctx context.Context, id string) (models.LedgerRecord, error) {
	var record models.LedgerRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&record).
		Get("/api/records/" + url.PathEscape(id))
	if err != nil {
		return models.LedgerRecord{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LedgerRecord{}, err
	}

	return record, nil
}

// GetCiphertextHandle implements [LedgerReader] via
// GET /api/records/{id}/handle.
func (h *httpLedgerAdapter) GetCiphertextHandle(ctx context.Context, id string) (string, error) {
	var handle models.HandleResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&handle).
		Get("/api/records/" + url.PathEscape(id) + "/handle")
	if err != nil {
		return "", fmt.Errorf("get ciphertext handle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return handle.Handle, nil
}

// IsServiceAvailable implements [LedgerReader] via GET /api/available.
func (h *httpLedgerAdapter) IsServiceAvailable(ctx context.Context) (bool, error) {
	var availability models.AvailabilityResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&availability).
		Get("/api/available")
	if err != nil {
		return false, fmt.Errorf("availability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return availability.Available, nil
}

// CreateRecord implements [LedgerWriter] via POST /api/records.
func (h *httpLedgerAdapter) CreateRecord(ctx context.Context, req models.CreateRecordRequest) (PendingTx, error) {
	return h.submit(ctx, ActionCreateRecord, "/api/records", req)
}

// VerifyDecryption implements [LedgerWriter] via
// POST /api/records/{id}/verify.
func (h *httpLedgerAdapter) VerifyDecryption(ctx context.Context, req models.VerifyDecryptionRequest) (PendingTx, error) {
	return h.submit(ctx, ActionVerifyDecryption, "/api/records/"+url.PathEscape(req.ID)+"/verify", req)
}

func (h *httpLedgerAdapter) submit(ctx context.Context, action, path string, payload any) (PendingTx, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", action, err)
	}

	token, err := h.signer.Sign(ctx, action, body)
	if err != nil {
		return nil, err
	}

	var receipt models.TxReceipt
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(body).
		SetResult(&receipt).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("func", "httpLedgerAdapter.submit").
		Str("action", action).
		Str("tx_hash", receipt.Hash).
		Msg("transaction submitted")

	return newPendingTx(h.client, receipt.Hash, h.pollInterval, h.logger), nil
}
