// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Code sources accepted by [TOTP.Source].
const (
	// SourceLocal computes codes on the client from the stored secret.
	SourceLocal = "local"
	// SourceRemote asks the server for every code.
	SourceRemote = "remote"
)

// Defaults applied to any field left empty by every other source.
const (
	DefaultAdapterAddress  = "http://localhost:8000"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRefreshInterval = time.Second
	DefaultClearAfter      = 60 * time.Second
)

// ClientConfig is the top-level configuration container for the accbox
// client. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds session-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the REST endpoint and outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// TOTP selects where codes come from and how often the popup refreshes.
	TOTP TOTP `envPrefix:"TOTP_"`

	// Clipboard holds the auto-clear delay for copied secrets.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Log holds the log destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session-level configuration.
type App struct {
	// Token is a pre-issued bearer token. When empty the client asks for
	// credentials at start-up.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`
}

// Adapter holds settings for the outbound REST transport.
type Adapter struct {
	// HTTPAddress is the base URL of the AccBox API
	// (e.g. "http://localhost:8000"). A bare host:port is accepted too.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// TOTP holds code generation settings.
type TOTP struct {
	// Source is either [SourceLocal] or [SourceRemote].
	// Env: TOTP_SOURCE
	Source string `env:"SOURCE"`

	// RefreshInterval is the popup tick period.
	// Env: TOTP_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Clipboard holds secure clipboard settings.
type Clipboard struct {
	// ClearAfter is how long a copied secret stays on the clipboard.
	// Env: CLIPBOARD_CLEAR_AFTER
	ClearAfter time.Duration `env:"CLEAR_AFTER"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file path. Empty means accbox.log next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaults returns the lowest-priority layer merged by the builder.
func defaults() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		TOTP: TOTP{
			Source:          SourceLocal,
			RefreshInterval: DefaultRefreshInterval,
		},
		Clipboard: Clipboard{
			ClearAfter: DefaultClearAfter,
		},
	}
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources. The first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
