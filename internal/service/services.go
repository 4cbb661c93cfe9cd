package service

import (
	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/otp"
)

// Services bundles the client use cases.
type Services struct {
	AuthService    AuthService
	AccountService AccountService
	TOTPService    TOTPService
}

func NewServices(api adapter.APIAdapter, generator *otp.Generator, totpCfg config.TOTP, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(api, log.Component("auth")),
		AccountService: NewAccountService(api, log.Component("accounts")),
		TOTPService:    NewTOTPService(api, generator, totpCfg.Source, log.Component("totp")),
	}
}
