// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

type httpPendingTx struct {
	client   *utils.HTTPClient
	hash     string
	interval time.Duration

	logger *logger.Logger
}

func newPendingTx(client *utils.HTTPClient, hash string, interval time.Duration, log *logger.Logger) *httpPendingTx {
	if interval <= 0 {
		interval = time.Second
	}
	return &httpPendingTx{client: client, hash: hash, interval: interval, logger: log}
}

func (p *httpPendingTx) Hash() string {
	return p.hash
}

// AwaitConfirmation polls GET /api/tx/{hash} until the receipt leaves the
// pending state or ctx is done.
func (p *httpPendingTx) AwaitConfirmation(ctx context.Context) (models.TxReceipt, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		receipt, err := p.poll(ctx)
		if err != nil {
			return models.TxReceipt{}, err
		}

		switch receipt.Status {
		case models.TxConfirmed:
			return receipt, nil
		case models.TxReverted:
			p.logger.Info().
				Str("func", "httpPendingTx.AwaitConfirmation").
				Str("tx_hash", p.hash).
				Str("reason", receipt.Reason).
				Msg("transaction reverted")
			return receipt, revertError(receipt.Reason)
		}

		select {
		case <-ctx.Done():
			return models.TxReceipt{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *httpPendingTx) poll(ctx context.Context) (models.TxReceipt, error) {
	var receipt models.TxReceipt

	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&receipt).
		Get("/api/tx/" + url.PathEscape(p.hash))
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("poll transaction %s: %w", p.hash, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TxReceipt{}, err
	}

	return receipt, nil
}
