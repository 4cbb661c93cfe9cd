// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OTPType is the kind of one-time password a [TOTPConfig] produces.
type OTPType string

const (
	// OTPTypeTOTP is RFC 6238 time-based OTP with a Base32 secret.
	OTPTypeTOTP OTPType = "totp"
	// OTPTypeHOTP is accepted from otpauth URIs. Codes are still derived
	// from the time counter, the same way the server derives them.
	OTPTypeHOTP OTPType = "hotp"
	// OTPTypeSteam is Steam Guard with a Base64 secret and 5 letter codes.
	OTPTypeSteam OTPType = "steam"
)

// DefaultPeriod is the TOTP step in seconds when none is configured.
const DefaultPeriod = 30

// DefaultDigits is the TOTP code length when none is configured.
const DefaultDigits = 6

// TOTPConfig is the 2FA configuration of one account, as returned by
// GET /api/accounts/{id}/totp.
type TOTPConfig struct {
	// Secret is Base32 for totp/hotp and standard Base64 for steam.
	// An empty secret means 2FA is not configured.
	Secret string `json:"secret"`

	Issuer    string  `json:"issuer"`
	Type      OTPType `json:"type"`
	Algorithm string  `json:"algorithm"`
	Digits    int     `json:"digits"`
	Period    int     `json:"period"`

	// TimeOffset corrects clock skew, in seconds. May be negative.
	TimeOffset int64 `json:"time_offset"`

	BackupCodes []string `json:"backup_codes"`
}

// Configured reports whether c carries a secret.
func (c TOTPConfig) Configured() bool {
	return c.Secret != ""
}

// EffectiveType returns Type, defaulting to [OTPTypeTOTP].
func (c TOTPConfig) EffectiveType() OTPType {
	if c.Type == "" {
		return OTPTypeTOTP
	}
	return c.Type
}

// EffectivePeriod returns Period, defaulting to [DefaultPeriod]. Steam codes
// always use a 30 second period.
func (c TOTPConfig) EffectivePeriod() int {
	if c.EffectiveType() == OTPTypeSteam || c.Period <= 0 {
		return DefaultPeriod
	}
	return c.Period
}

// EffectiveDigits returns Digits, defaulting to [DefaultDigits].
func (c TOTPConfig) EffectiveDigits() int {
	if c.Digits <= 0 {
		return DefaultDigits
	}
	return c.Digits
}

// TOTPConfigRequest is the body of POST /api/accounts/{id}/totp. The server
// input model names the type field totp_type.
type TOTPConfigRequest struct {
	Secret      string   `json:"secret"`
	Issuer      string   `json:"issuer"`
	Type        OTPType  `json:"totp_type"`
	Algorithm   string   `json:"algorithm"`
	Digits      int      `json:"digits"`
	Period      int      `json:"period"`
	TimeOffset  int64    `json:"time_offset"`
	BackupCodes []string `json:"backup_codes,omitempty"`
}

// NewTOTPConfigRequest converts cfg into its write representation.
func NewTOTPConfigRequest(cfg TOTPConfig) TOTPConfigRequest {
	return TOTPConfigRequest{
		Secret:      cfg.Secret,
		Issuer:      cfg.Issuer,
		Type:        cfg.EffectiveType(),
		Algorithm:   cfg.Algorithm,
		Digits:      cfg.EffectiveDigits(),
		Period:      cfg.EffectivePeriod(),
		TimeOffset:  cfg.TimeOffset,
		BackupCodes: cfg.BackupCodes,
	}
}

// TOTPCode is a server-computed code, as returned by
// GET /api/accounts/{id}/totp/generate.
type TOTPCode struct {
	Code      string  `json:"code"`
	Remaining int     `json:"remaining"`
	Period    int     `json:"period"`
	Type      OTPType `json:"type"`
}

// TOTPImportResult is the response of POST /api/accounts/{id}/totp/parse.
type TOTPImportResult struct {
	Message string  `json:"message"`
	Issuer  string  `json:"issuer"`
	Type    OTPType `json:"type"`
	Digits  int     `json:"digits"`
}
