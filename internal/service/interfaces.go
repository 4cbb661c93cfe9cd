// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases that sit between the terminal
// UI and the REST adapter: session handling, snapshot loading, batch combo
// edits, invalid combo cleanup and 2FA configuration.
//
// Services translate transport errors into the sentinels of errors.go so
// the UI never inspects HTTP details.
package service

import (
	"context"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/services_mock.go -package=mock

// AuthService manages the API session.
type AuthService interface {
	// Login exchanges credentials for a token, which the adapter keeps for
	// every later call. Returns [ErrWrongPassword] or [ErrAccountLocked]
	// with the server's message attached.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Authenticated reports whether a token is present. It does not check
	// the token with the server.
	Authenticated() bool

	// Logout drops the token.
	Logout()

	// Health returns the server status line.
	Health(ctx context.Context) (models.HealthResponse, error)
}

// AccountService loads and edits accounts.
type AccountService interface {
	// Load fetches accounts, account types and property groups together.
	// Groups and their values come back in display order.
	Load(ctx context.Context) (models.Snapshot, error)

	// BatchApply adds or removes req.Values on every account and persists
	// the accounts whose combos changed. Accounts that did not change are
	// not sent. Failures on some accounts do not stop the others.
	BatchApply(ctx context.Context, catalog *combo.Catalog, accounts []models.Account, req BatchRequest) (BatchResult, error)

	// CleanupInvalid removes empty and dangling combos from accounts and
	// persists the accounts that had any. It must only run after the user
	// confirmed it.
	CleanupInvalid(ctx context.Context, catalog *combo.Catalog, accounts []models.Account) (CleanupResult, error)

	ToggleFavorite(ctx context.Context, id int64) (bool, error)
	RecordUse(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// TOTPService manages 2FA configurations. It also serves as the fetcher of
// local and remote popup code sources.
type TOTPService interface {
	popup.ConfigFetcher
	popup.CodeFetcher

	// Save validates cfg by computing a code and stores it.
	Save(ctx context.Context, accountID int64, cfg models.TOTPConfig) error

	// ImportURI checks uri locally and lets the server parse and store it.
	ImportURI(ctx context.Context, accountID int64, uri string) (models.TOTPImportResult, error)

	Delete(ctx context.Context, accountID int64) error

	// ExportURI returns the otpauth URI of the account's configuration.
	ExportURI(ctx context.Context, accountID int64, account string) (string, error)

	// ExportQR renders ExportURI as a terminal QR code.
	ExportQR(ctx context.Context, accountID int64, account string) (string, error)

	// Source returns the code source selected by configuration.
	Source() popup.Source
}

// BatchRequest describes one batch combo edit.
type BatchRequest struct {
	Values []models.ValueID
	Mode   combo.Mode
	Remove bool
}

// BatchResult reports what a batch edit persisted.
type BatchResult struct {
	// Updated holds the saved accounts with their new combos, in input
	// order.
	Updated []models.Account
	// Unchanged counts accounts that needed no update.
	Unchanged int
	// Failed counts accounts whose update was rejected.
	Failed int
}

// CleanupResult reports what an invalid combo cleanup persisted.
type CleanupResult struct {
	Updated []models.Account
	// Removed is the number of combos dropped across all saved accounts.
	Removed int
	Failed  int
}
