package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/models"
)

type totpService struct {
	api       adapter.APIAdapter
	generator *otp.Generator
	source    string
	logger    *logger.Logger
}

// NewTOTPService creates a TOTPService. source is config.SourceLocal or
// config.SourceRemote.
func NewTOTPService(api adapter.APIAdapter, generator *otp.Generator, source string, log *logger.Logger) TOTPService {
	return &totpService{api: api, generator: generator, source: source, logger: log}
}

func (s *totpService) GetTOTPConfig(ctx context.Context, accountID int64) (models.TOTPConfig, error) {
	cfg, err := s.api.GetTOTPConfig(ctx, accountID)
	if err != nil {
		return models.TOTPConfig{}, mapAdapterError(err)
	}
	return cfg, nil
}

func (s *totpService) GenerateTOTPCode(ctx context.Context, accountID int64) (models.TOTPCode, error) {
	code, err := s.api.GenerateTOTPCode(ctx, accountID)
	if err != nil {
		return models.TOTPCode{}, mapAdapterError(err)
	}
	return code, nil
}

func (s *totpService) Save(ctx context.Context, accountID int64, cfg models.TOTPConfig) error {
	cfg.Secret = strings.TrimSpace(cfg.Secret)
	if cfg.EffectiveType() != models.OTPTypeSteam {
		cfg.Secret = otp.NormalizeSecret(cfg.Secret)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = "SHA1"
	}
	if _, err := otp.Generate(cfg, s.generator.Now()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTOTPConfig, err)
	}

	if err := s.api.SaveTOTPConfig(ctx, accountID, models.NewTOTPConfigRequest(cfg)); err != nil {
		return fmt.Errorf("error saving 2fa configuration: %w", mapAdapterError(err))
	}
	s.logger.Info().Int64("account_id", accountID).Str("type", string(cfg.EffectiveType())).Msg("2fa configuration saved")
	return nil
}

func (s *totpService) ImportURI(ctx context.Context, accountID int64, uri string) (models.TOTPImportResult, error) {
	uri = strings.TrimSpace(uri)
	if _, err := otp.ParseURI(uri); err != nil {
		return models.TOTPImportResult{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	res, err := s.api.ImportTOTPURI(ctx, accountID, uri)
	if err != nil {
		return models.TOTPImportResult{}, fmt.Errorf("error importing otpauth uri: %w", mapAdapterError(err))
	}
	s.logger.Info().Int64("account_id", accountID).Str("issuer", res.Issuer).Msg("2fa configuration imported")
	return res, nil
}

func (s *totpService) Delete(ctx context.Context, accountID int64) error {
	if err := s.api.DeleteTOTPConfig(ctx, accountID); err != nil {
		return fmt.Errorf("error deleting 2fa configuration: %w", mapAdapterError(err))
	}
	s.logger.Info().Int64("account_id", accountID).Msg("2fa configuration removed")
	return nil
}

func (s *totpService) ExportURI(ctx context.Context, accountID int64, account string) (string, error) {
	cfg, err := s.GetTOTPConfig(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("error exporting 2fa configuration: %w", err)
	}
	if !cfg.Configured() {
		return "", ErrNotConfigured
	}

	uri, err := otp.KeyURI(cfg, account)
	if err != nil {
		if errors.Is(err, otp.ErrUnsupportedType) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidTOTPConfig, err)
	}
	return uri, nil
}

func (s *totpService) ExportQR(ctx context.Context, accountID int64, account string) (string, error) {
	uri, err := s.ExportURI(ctx, accountID, account)
	if err != nil {
		return "", err
	}
	return otp.QRCode(uri)
}

func (s *totpService) Source() popup.Source {
	if s.source == config.SourceRemote {
		return popup.NewRemoteSource(s, s.generator.Now)
	}
	return popup.NewLocalSource(s, s.generator)
}
