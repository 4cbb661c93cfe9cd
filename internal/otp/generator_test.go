package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/models"
)

func TestGenerator_Code(t *testing.T) {
	clock := unix(1700000000)
	g := NewGenerator(logger.Nop(), WithClock(func() time.Time { return clock }))

	tests := []struct {
		name string
		cfg  models.TOTPConfig
		want string
	}{
		{name: "default type is totp", cfg: models.TOTPConfig{Secret: demoSecret}, want: "324550"},
		{name: "hotp uses the time counter", cfg: models.TOTPConfig{Secret: demoSecret, Type: models.OTPTypeHOTP}, want: "324550"},
		{name: "offset applies", cfg: models.TOTPConfig{Secret: demoSecret, TimeOffset: 30}, want: "367665"},
		{name: "steam", cfg: models.TOTPConfig{Secret: steamSecret, Type: models.OTPTypeSteam}, want: "R87JJ"},
		{name: "invalid secret yields empty", cfg: models.TOTPConfig{Secret: "!!!"}, want: ""},
		{name: "missing secret yields empty", cfg: models.TOTPConfig{}, want: ""},
		{name: "unknown type yields empty", cfg: models.TOTPConfig{Secret: demoSecret, Type: "yubikey"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Code(tt.cfg))
		})
	}
}

func TestGenerator_NeverCaches(t *testing.T) {
	now := unix(1700000000)
	g := NewGenerator(logger.Nop(), WithClock(func() time.Time { return now }))
	cfg := models.TOTPConfig{Secret: demoSecret}

	first := g.Code(cfg)
	now = unix(1700000010)
	assert.NotEqual(t, first, g.Code(cfg))
}

func TestWindow(t *testing.T) {
	remaining, period, urgency := Window(models.TOTPConfig{Secret: demoSecret}, unix(1700000005))
	assert.Equal(t, 5, remaining)
	assert.Equal(t, 30, period)
	assert.Equal(t, UrgencyCritical, urgency)

	remaining, _, urgency = Window(models.TOTPConfig{Secret: demoSecret, TimeOffset: -10}, unix(1700000005))
	assert.Equal(t, 15, remaining)
	assert.Equal(t, UrgencyNormal, urgency)

	_, period, _ = Window(models.TOTPConfig{Type: models.OTPTypeSteam, Period: 60}, unix(0))
	assert.Equal(t, 30, period)
}
