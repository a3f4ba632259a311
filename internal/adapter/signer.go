// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/utils"
)

// walletTokenTTL bounds how long a signed write may wait in transit.
const walletTokenTTL = 5 * time.Minute

type walletSigner struct {
	key      ed25519.PrivateKey
	address  string
	approver Approver

	logger *logger.Logger
}

// NewWalletSigner creates a [Signer] backed by the ed25519 seed hexSeed.
// Every signature is first confirmed by approver; a nil approver approves
// everything.
func NewWalletSigner(hexSeed string, approver Approver, log *logger.Logger) (Signer, error) {
	key, err := utils.WalletKeyFromSeed(hexSeed)
	if err != nil {
		return nil, fmt.Errorf("error creating wallet signer: %w", err)
	}

	return &walletSigner{
		key:      key,
		address:  utils.AddressFromPublicKey(key.Public().(ed25519.PublicKey)),
		approver: approver,
		logger:   log,
	}, nil
}

func (s *walletSigner) Address() string {
	return s.address
}

// Sign asks the approver, then issues a wallet token bound to body.
func (s *walletSigner) Sign(ctx context.Context, action string, body []byte) (string, error) {
	if s.approver != nil {
		approved, err := s.approver.Approve(ctx, action)
		if err != nil {
			return "", fmt.Errorf("wallet approval: %w", err)
		}
		if !approved {
			s.logger.Info().
				Str("func", "walletSigner.Sign").
				Str("action", action).
				Msg("signature declined by user")
			return "", ErrWalletDeclined
		}
	}

	token, err := utils.GenerateWalletToken(s.key, body, walletTokenTTL)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", action, err)
	}

	return token, nil
}

// ApproverFunc adapts a function to [Approver].
type ApproverFunc func(ctx context.Context, action string) (bool, error)

func (f ApproverFunc) Approve(ctx context.Context, action string) (bool, error) {
	return f(ctx, action)
}
