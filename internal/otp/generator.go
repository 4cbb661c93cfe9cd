package otp

import (
	"time"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/models"
)

// Generator computes codes for account configurations. Failures produce an
// empty code and a log entry.
type Generator struct {
	now func() time.Time
	log *logger.Logger
}

// GeneratorOption configures a [Generator].
type GeneratorOption func(*Generator)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator returns a Generator using the wall clock.
func NewGenerator(log *logger.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{now: time.Now, log: log}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Now returns the generator's current time.
func (g *Generator) Now() time.Time {
	return g.now()
}

// Code returns the current code for cfg, or "" on failure.
func (g *Generator) Code(cfg models.TOTPConfig) string {
	return g.CodeAt(cfg, g.now())
}

// CodeAt returns the code for cfg at time at, or "" on failure.
func (g *Generator) CodeAt(cfg models.TOTPConfig, at time.Time) string {
	code, err := Generate(cfg, at)
	if err != nil {
		g.log.Error().Err(err).
			Str("type", string(cfg.EffectiveType())).
			Str("issuer", cfg.Issuer).
			Msg("failed to generate one-time code")
		return ""
	}
	return code
}

// Generate dispatches on the configuration type.
func Generate(cfg models.TOTPConfig, at time.Time) (string, error) {
	switch cfg.EffectiveType() {
	case models.OTPTypeSteam:
		return GenerateSteamCode(cfg.Secret, at, cfg.TimeOffset)
	case models.OTPTypeTOTP, models.OTPTypeHOTP:
		return GenerateTOTP(cfg.Secret, at, OptionsFromConfig(cfg))
	default:
		return "", ErrUnsupportedType
	}
}

// Window returns the remaining seconds, period and urgency for cfg at time
// at. The offset shifts the window together with the code.
func Window(cfg models.TOTPConfig, at time.Time) (remaining, period int, urgency Urgency) {
	period = cfg.EffectivePeriod()
	remaining = TimeRemaining(at.Add(time.Duration(cfg.TimeOffset)*time.Second), period)
	return remaining, period, UrgencyFor(remaining)
}
