package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		at   int64
		want []string
	}{
		{
			name: "rfc 6238 eight digits",
			args: []string{"-secret", rfcSecret, "-digits", "8"},
			at:   59,
			want: []string{"Code: 9428·7082", "Valid for: 1s (expiring)"},
		},
		{
			name: "default six digits",
			args: []string{"-secret", rfcSecret},
			at:   59,
			want: []string{"Code: 287·082"},
		},
		{
			name: "steam",
			args: []string{"-type", "steam", "-secret", "MTIzNDU2Nzg5MDEyMzQ1Njc4OTA="},
			at:   0,
			want: []string{"Code: G G 5 F 5", "Valid for: 30s\n"},
		},
		{
			name: "uri",
			args: []string{"-uri", "otpauth://totp/Example:alice?secret=" + rfcSecret + "&digits=8&issuer=Example"},
			at:   59,
			want: []string{"Code: 9428·7082"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out, time.Unix(tt.at, 0)))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRun_SecretFromEnv(t *testing.T) {
	t.Setenv(secretEnv, rfcSecret)

	var out bytes.Buffer
	require.NoError(t, run(nil, &out, time.Unix(59, 0)))
	assert.Contains(t, out.String(), "Code: 287·082")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv(secretEnv, "")

	var out bytes.Buffer
	assert.ErrorIs(t, run(nil, &out, time.Now()), errNoSecret)
	assert.Error(t, run([]string{"-uri", "https://example.com"}, &out, time.Now()))
	assert.Error(t, run([]string{"-secret", rfcSecret, "-type", "sms"}, &out, time.Now()))
	assert.Error(t, run([]string{"-unknown"}, &out, time.Now()))
}

func TestRun_QR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.png")

	var out bytes.Buffer
	err := run([]string{"-secret", rfcSecret, "-account", "alice", "-qr", "-png", path}, &out, time.Unix(59, 0))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "QR code written to "+path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_SteamHasNoQR(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-type", "steam", "-secret", "MTIzNDU2Nzg5MDEyMzQ1Njc4OTA=", "-qr"}, &out, time.Unix(0, 0))
	assert.Error(t, err)
}
