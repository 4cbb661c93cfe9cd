package otp

import (
	"encoding/base32"
	"fmt"
	"net/url"
	"strings"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/accbox/models"
)

// DefaultIssuer labels exported keys whose configuration has no issuer.
const DefaultIssuer = "AccBox"

// ParseURI reads an otpauth://totp or otpauth://hotp URI into a
// configuration. The issuer falls back to the URI label.
func ParseURI(uri string) (models.TOTPConfig, error) {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return models.TOTPConfig{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if u.Scheme != "otpauth" {
		return models.TOTPConfig{}, fmt.Errorf("%w: scheme %q", ErrInvalidURI, u.Scheme)
	}

	key, err := otp.NewKeyFromURL(u.String())
	if err != nil {
		return models.TOTPConfig{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	typ := models.OTPType(strings.ToLower(key.Type()))
	if typ != models.OTPTypeTOTP && typ != models.OTPTypeHOTP {
		return models.TOTPConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedType, key.Type())
	}

	secret := NormalizeSecret(key.Secret())
	if secret == "" {
		return models.TOTPConfig{}, ErrEmptySecret
	}

	alg := key.Algorithm()
	if alg == otp.AlgorithmMD5 {
		return models.TOTPConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	issuer := key.Issuer()
	if issuer == "" {
		issuer = strings.TrimPrefix(u.Path, "/")
	}

	return models.TOTPConfig{
		Secret:    secret,
		Issuer:    issuer,
		Type:      typ,
		Algorithm: alg.String(),
		Digits:    key.Digits().Length(),
		Period:    int(key.Period()),
	}, nil
}

// KeyURI exports cfg as an otpauth URI for account. Steam secrets have no
// standard URI form.
func KeyURI(cfg models.TOTPConfig, account string) (string, error) {
	if !cfg.Configured() {
		return "", ErrEmptySecret
	}

	typ := cfg.EffectiveType()
	if typ == models.OTPTypeSteam {
		return "", fmt.Errorf("%w: %s export", ErrUnsupportedType, typ)
	}

	raw, err := decodeBase32(cfg.Secret)
	if err != nil {
		return "", err
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if account == "" {
		account = issuer
	}

	var key *otp.Key
	if typ == models.OTPTypeHOTP {
		key, err = hotp.Generate(hotp.GenerateOpts{
			Issuer:      issuer,
			AccountName: account,
			Secret:      raw,
			Digits:      otp.Digits(cfg.EffectiveDigits()),
			Algorithm:   ParseAlgorithm(cfg.Algorithm),
		})
	} else {
		key, err = totp.Generate(totp.GenerateOpts{
			Issuer:      issuer,
			AccountName: account,
			Period:      uint(cfg.EffectivePeriod()),
			Secret:      raw,
			Digits:      otp.Digits(cfg.EffectiveDigits()),
			Algorithm:   ParseAlgorithm(cfg.Algorithm),
		})
	}
	if err != nil {
		return "", fmt.Errorf("error building key uri: %w", err)
	}

	return key.URL(), nil
}

func decodeBase32(secret string) ([]byte, error) {
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(NormalizeSecret(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return raw, nil
}
