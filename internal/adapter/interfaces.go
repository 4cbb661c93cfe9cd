// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the AccBox REST API.
//
// The primary abstraction is [APIAdapter], which decouples the service layer
// from HTTP. The package ships a resty implementation ([NewHTTPAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's {"detail": "..."} message is kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/accbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines communication with the AccBox server. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type APIAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with username and password. On success it stores
	// the returned token via SetToken. A locked account yields [ErrLocked].
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Health reports the server status. It needs no token.
	Health(ctx context.Context) (models.HealthResponse, error)

	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, account models.AccountCreate) (int64, error)

	// UpdateAccount sends a partial update; nil fields are left unchanged.
	UpdateAccount(ctx context.Context, id int64, update models.AccountUpdate) error
	DeleteAccount(ctx context.Context, id int64) error

	// RecordUse bumps the last-used timestamp of an account.
	RecordUse(ctx context.Context, id int64) error

	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, id int64) (bool, error)

	ListAccountTypes(ctx context.Context) ([]models.AccountType, error)
	ListPropertyGroups(ctx context.Context) ([]models.PropertyGroup, error)

	// GetTOTPConfig fetches the 2FA configuration of an account. An
	// unconfigured account yields a config with an empty secret, not an
	// error.
	GetTOTPConfig(ctx context.Context, id int64) (models.TOTPConfig, error)

	// GenerateTOTPCode asks the server to compute the current code.
	GenerateTOTPCode(ctx context.Context, id int64) (models.TOTPCode, error)

	SaveTOTPConfig(ctx context.Context, id int64, cfg models.TOTPConfigRequest) error

	// ImportTOTPURI lets the server parse and store an otpauth:// URI.
	ImportTOTPURI(ctx context.Context, id int64, uri string) (models.TOTPImportResult, error)
	DeleteTOTPConfig(ctx context.Context, id int64) error
}
