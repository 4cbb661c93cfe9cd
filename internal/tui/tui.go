// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the client. It renders the
// account list, the filter sidebar and the 2FA popup, and turns key presses
// into calls on the services, the popup manager and the clipboard.
//
// All state transitions of filters, combos and popups live in their own
// packages; this package only wires them to bubbletea.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin    = "login"
	pageAccounts = "accounts"
)

// Options are the collaborators of the terminal UI.
type Options struct {
	Services  *service.Services
	Popup     PopupController
	Clipboard Copier
	Bridge    *Bridge
	BuildInfo models.AppBuildInfo

	// Now is the clock of the recent filter. Defaults to time.Now.
	Now func() time.Time
}

// TUI owns the bubbletea program.
type TUI struct {
	opts   Options
	logger *logger.Logger
}

func New(opts Options, log *logger.Logger) (*TUI, error) {
	if opts.Services == nil || opts.Popup == nil || opts.Clipboard == nil {
		return nil, ErrMissingDeps
	}
	if opts.Bridge == nil {
		opts.Bridge = NewBridge()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &TUI{opts: opts, logger: log}, nil
}

// Run shows the UI until the user quits or ctx is cancelled. It starts on
// the account list when a token is already configured. A user quit returns
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	start := pageLogin
	if t.opts.Services.AuthService.Authenticated() {
		start = pageAccounts
	}

	root := NewRootModel(t.pages(ctx), start, t.opts.BuildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.opts.Bridge.attach(program)
	defer t.opts.Bridge.detach()

	finalModel, err := program.Run()
	t.opts.Popup.Close()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.opts.Services.AuthService),
		pageAccounts: NewAccountsModel(ctx, t.opts, t.logger),
	}
}
