package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-transcript-keeper/internal/config"
	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

type httpGatewayAdapter struct {
	client *utils.HTTPClient
	signer Signer

	mu     sync.RWMutex
	params *models.GatewayParams

	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs the HTTP implementation of [Gateway]
// talking to the relayer at adapterCfg.GatewayURL. User decryption requests
// are signed by signer.
func NewHTTPGatewayAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, signer Signer, log *logger.Logger) (Gateway, error) {
	client, err := newRestClient(adapterCfg.GatewayURL, adapterCfg.RequestTimeout, appCfg.HashKey, log)
	if err != nil {
		return nil, err
	}

	return &httpGatewayAdapter{client: client, signer: signer, logger: log}, nil
}

// Init implements [EncryptionGateway] by fetching the public parameters from
// GET /api/gateway/keys. Repeated calls after a success are no-ops.
func (g *httpGatewayAdapter) Init(ctx context.Context) error {
	if g.Initialized() {
		return nil
	}

	var params models.GatewayParams
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&params).
		Get("/api/gateway/keys")
	if err != nil {
		return fmt.Errorf("gateway init request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	g.mu.Lock()
	g.params = &params
	g.mu.Unlock()

	g.logger.Info().
		Str("func", "httpGatewayAdapter.Init").
		Str("key_id", params.KeyID).
		Int64("chain_id", params.ChainID).
		Msg("gateway initialized")

	return nil
}

// Initialized implements [EncryptionGateway].
func (g *httpGatewayAdapter) Initialized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.params != nil
}

// Encrypt implements [EncryptionGateway] via POST /api/gateway/encrypt.
func (g *httpGatewayAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	if !g.Initialized() {
		return models.EncryptedInput{}, ErrGatewayNotInitialized
	}

	var input models.EncryptedInput
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&input).
		Post("/api/gateway/encrypt")
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedInput{}, err
	}

	return input, nil
}

// PublicDecrypt implements [DecryptionGateway] via
// POST /api/gateway/public-decrypt.
func (g *httpGatewayAdapter) PublicDecrypt(ctx context.Context, req models.PublicDecryptRequest) (models.DecryptionResult, error) {
	if !g.Initialized() {
		return models.DecryptionResult{}, ErrGatewayNotInitialized
	}

	var result models.DecryptionResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/gateway/public-decrypt")
	if err != nil {
		return models.DecryptionResult{}, fmt.Errorf("public decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecryptionResult{}, err
	}

	return result, nil
}

// UserDecrypt implements [DecryptionGateway] via
// POST /api/gateway/user-decrypt. The request is signed by the wallet; a
// declined signature yields [ErrWalletDeclined].
func (g *httpGatewayAdapter) UserDecrypt(ctx context.Context, handles []string, contractAddress string) (map[string]uint64, error) {
	if !g.Initialized() {
		return nil, ErrGatewayNotInitialized
	}

	body, err := json.Marshal(models.UserDecryptRequest{
		Handles:         handles,
		ContractAddress: contractAddress,
		UserAddress:     g.signer.Address(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode user decrypt payload: %w", err)
	}

	token, err := g.signer.Sign(ctx, ActionUserDecrypt, body)
	if err != nil {
		return nil, err
	}

	var result models.UserDecryptResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(body).
		SetResult(&result).
		Post("/api/gateway/user-decrypt")
	if err != nil {
		return nil, fmt.Errorf("user decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.ClearValues, nil
}
