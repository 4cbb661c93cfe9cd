package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/models"
)

type authService struct {
	api    adapter.APIAdapter
	logger *logger.Logger
}

// NewAuthService creates an AuthService over api.
func NewAuthService(api adapter.APIAdapter, log *logger.Logger) AuthService {
	return &authService{api: api, logger: log}
}

func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	resp, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, withDetail(ErrWrongPassword, extractBody(err))
		}
		return models.User{}, fmt.Errorf("error logging in: %w", mapAdapterError(err))
	}

	s.logger.Info().Int64("user_id", resp.User.ID).Msg("session started")
	return resp.User, nil
}

func (s *authService) Authenticated() bool {
	return s.api.Token() != ""
}

func (s *authService) Logout() {
	s.api.SetToken("")
}

func (s *authService) Health(ctx context.Context) (models.HealthResponse, error) {
	h, err := s.api.Health(ctx)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("error checking server health: %w", mapAdapterError(err))
	}
	return h, nil
}
