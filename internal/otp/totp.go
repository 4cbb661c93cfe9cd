// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/accbox/models"
)

// Code length bounds for decimal codes.
const (
	MinDigits = 1
	MaxDigits = 10
)

// Options tune standard code generation. Zero values fall back to
// [models.DefaultDigits], [models.DefaultPeriod] and SHA1.
type Options struct {
	Digits int
	// Period is the window length in seconds.
	Period int
	// Offset is added to the clock, in seconds. May be negative.
	Offset int64
	// Algorithm is SHA1, SHA256 or SHA512. Anything else means SHA1.
	Algorithm string
}

// OptionsFromConfig extracts generation options from cfg.
func OptionsFromConfig(cfg models.TOTPConfig) Options {
	return Options{
		Digits:    cfg.EffectiveDigits(),
		Period:    cfg.EffectivePeriod(),
		Offset:    cfg.TimeOffset,
		Algorithm: cfg.Algorithm,
	}
}

func (o Options) withDefaults() Options {
	if o.Digits == 0 {
		o.Digits = models.DefaultDigits
	}
	if o.Period == 0 {
		o.Period = models.DefaultPeriod
	}
	return o
}

// GenerateTOTP returns the code for secret at time at.
//
// The secret is Base32. Case, whitespace, dashes and padding are ignored.
func GenerateTOTP(secret string, at time.Time, opts Options) (string, error) {
	opts = opts.withDefaults()

	if opts.Digits < MinDigits || opts.Digits > MaxDigits {
		return "", fmt.Errorf("%w: %d", ErrInvalidDigits, opts.Digits)
	}
	if opts.Period < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPeriod, opts.Period)
	}

	key := NormalizeSecret(secret)
	if key == "" {
		return "", ErrEmptySecret
	}

	shifted, err := shift(at, opts.Offset)
	if err != nil {
		return "", err
	}

	code, err := totp.GenerateCodeCustom(key, shifted, totp.ValidateOpts{
		Period:    uint(opts.Period),
		Digits:    otp.Digits(opts.Digits),
		Algorithm: ParseAlgorithm(opts.Algorithm),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}

	return code, nil
}

// NormalizeSecret uppercases a Base32 secret and strips whitespace,
// dashes and padding.
func NormalizeSecret(secret string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '=' {
			return -1
		}
		return unicode.ToUpper(r)
	}, secret)
}

// ParseAlgorithm maps an algorithm name to its HMAC hash. Unknown names
// resolve to SHA1.
func ParseAlgorithm(name string) otp.Algorithm {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "") {
	case "SHA256":
		return otp.AlgorithmSHA256
	case "SHA512":
		return otp.AlgorithmSHA512
	default:
		return otp.AlgorithmSHA1
	}
}

func shift(at time.Time, offset int64) (time.Time, error) {
	shifted := at.Add(time.Duration(offset) * time.Second)
	if shifted.Unix() < 0 {
		return time.Time{}, ErrInvalidTime
	}
	return shifted, nil
}
