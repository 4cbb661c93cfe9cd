// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [ClientConfig] is usable before the
// client starts.
//
// Returns nil if the configuration is valid, or one of the package's
// sentinel errors wrapped with the offending value.
func (cfg *ClientConfig) validate() error {
	if err := validateAddress(cfg.Adapter.HTTPAddress); err != nil {
		return err
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	switch cfg.TOTP.Source {
	case SourceLocal, SourceRemote:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidTOTPConfigs, cfg.TOTP.Source)
	}
	if cfg.TOTP.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", ErrInvalidTOTPConfigs)
	}

	if cfg.Clipboard.ClearAfter <= 0 {
		return fmt.Errorf("%w: clear delay must be positive", ErrInvalidClipboardConfigs)
	}

	return nil
}

func validateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: malformed address %q", ErrInvalidAdapterConfigs, addr)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAdapterConfigs, u.Scheme)
	}

	return nil
}
