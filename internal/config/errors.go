package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a malformed address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidTOTPConfigs indicates an unknown code source or a zero
	// refresh interval.
	ErrInvalidTOTPConfigs = errors.New("invalid totp configuration")
	// ErrInvalidClipboardConfigs indicates a non-positive clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
)
