// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-transcript-keeper/internal/logger"
	"github.com/MKhiriev/go-transcript-keeper/internal/service"
	"github.com/MKhiriev/go-transcript-keeper/models"
)

var ErrNilController = errors.New("record controller is nil")

// TUI is the terminal front end of the transcript client.
type TUI struct {
	controller service.RecordController
	approver   *Approver
	build      models.AppBuildInfo
	logger     *logger.Logger
}

// New creates the TUI. approver may be nil when the wallet signer does not
// need interactive confirmation.
func New(controller service.RecordController, approver *Approver, build models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if controller == nil {
		return nil, ErrNilController
	}
	return &TUI{
		controller: controller,
		approver:   approver,
		build:      build,
		logger:     log,
	}, nil
}

// Run blocks until the user quits or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(
		newModel(ctx, t.controller, t.build, t.logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if t.approver != nil {
		t.approver.attach(p)
		defer t.approver.detach()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
