package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/models"
)

func TestRenderPopup(t *testing.T) {
	tests := []struct {
		name    string
		frame   popup.Frame
		want    []string
		notWant []string
	}{
		{
			name:  "closed",
			frame: popup.Frame{},
		},
		{
			name:  "loading",
			frame: popup.Frame{State: popup.StateLoading, Title: "alice"},
			want:  []string{"alice", "Loading code..."},
		},
		{
			name:    "failed",
			frame:   popup.Frame{State: popup.StateDisplaying, Title: "alice", Failed: true},
			want:    []string{"Code unavailable", "esc: close"},
			notWant: []string{"Loading"},
		},
		{
			name: "displaying",
			frame: popup.Frame{
				State: popup.StateDisplaying, Title: "alice", Code: "123456", Display: "123·456",
				Remaining: 20, Period: 30, Progress: 2.0 / 3, Urgency: otp.UrgencyNormal,
			},
			want:    []string{"123·456", "20s"},
			notWant: []string{"expiring"},
		},
		{
			name: "expiring",
			frame: popup.Frame{
				State: popup.StateDisplaying, Title: "alice", Code: "R87JJ", Display: "R 8 7 J J",
				Remaining: 3, Period: 30, Progress: 0.1, Urgency: otp.UrgencyCritical, Expiring: true,
			},
			want: []string{"R 8 7 J J", " 3s", "expiring"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPopup(tt.frame)
			if len(tt.want) == 0 {
				assert.Empty(t, out)
			}
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestBatchModel_RequestInCatalogOrder(t *testing.T) {
	m := newBatchModel(combo.NewCatalog(testSnapshot().Groups))
	require.Len(t, m.values, 3)

	m.move(-1)
	m.toggle()
	m.move(-2)
	m.toggle()
	m.switchMode()

	req := m.request(true)
	assert.Equal(t, []models.ValueID{1, 7}, req.Values)
	assert.Equal(t, combo.ModeIndependent, req.Mode)
	assert.True(t, req.Remove)

	m.toggle()
	assert.Equal(t, []models.ValueID{7}, m.request(false).Values)
}

func TestBatchModel_EmptyCatalog(t *testing.T) {
	m := newBatchModel(combo.NewCatalog(nil))
	m.move(1)
	m.toggle()
	assert.Empty(t, m.request(false).Values)
	assert.Contains(t, m.View(0), "No property values defined")
}

func TestTOTPForm_Config(t *testing.T) {
	f := newTOTPConfigForm(models.Account{ID: 1, Email: "a@example.com"})
	f.inputs[fieldSecret].SetValue(" jbswy3dpehpk3pxp ")
	f.inputs[fieldType].SetValue("STEAM")
	f.inputs[fieldAlgorithm].SetValue("sha256")
	f.inputs[fieldDigits].SetValue("")
	f.inputs[fieldOffset].SetValue("-15")

	cfg, err := f.config()
	require.NoError(t, err)
	assert.Equal(t, models.TOTPConfig{
		Secret: "jbswy3dpehpk3pxp", Type: models.OTPTypeSteam, Algorithm: "SHA256",
		Period: 30, TimeOffset: -15,
	}, cfg)

	f.inputs[fieldPeriod].SetValue("thirty")
	_, err = f.config()
	assert.ErrorIs(t, err, errBadNumber)
}

func TestRenderCombos(t *testing.T) {
	catalog := combo.NewCatalog(testSnapshot().Groups)

	out := renderCombos([]models.Combo{{7, 1}, {}, {2}}, catalog)
	assert.Equal(t, "[ok eu] [! invalid] [banned]", out)
	assert.Empty(t, renderCombos(nil, catalog))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Straßen...", fitText("Straßenbahn Konto", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abcdef", fitText("abcdef", 0))
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, "Network is down or the server is unavailable",
		humanizeServerUnavailableError(assertErr("Get \"http://x\": context deadline exceeded")))
	assert.Equal(t, "boom", humanizeServerUnavailableError(assertErr("boom")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
