package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("accbox-test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	return fs
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// TestParseFlags tests the parseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *ClientConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "http://localhost:8000",
				"-request-timeout", "15s",
				"-token", "deadbeef",
				"-totp-source", "remote",
				"-refresh-interval", "2s",
				"-clipboard-clear-after", "45s",
				"-log-file", "/var/log/accbox.log",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "deadbeef", cfg.App.Token)
				assert.Equal(t, SourceRemote, cfg.TOTP.Source)
				assert.Equal(t, 2*time.Second, cfg.TOTP.RefreshInterval)
				assert.Equal(t, 45*time.Second, cfg.Clipboard.ClearAfter)
				assert.Equal(t, "/var/log/accbox.log", cfg.Log.File)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/accbox.json"},
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.Equal(t, "/etc/accbox.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *ClientConfig) {
				assert.Equal(t, &ClientConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
