package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/internal/service"
	svcmock "github.com/MKhiriev/accbox/internal/service/mock"
	"github.com/MKhiriev/accbox/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ts(d time.Duration) models.Timestamp {
	return models.Timestamp{Time: testNow.Add(d)}
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Types: []models.AccountType{
			{ID: 1, Name: "Google", Icon: "G", LoginURL: "https://accounts.example.com/?Email="},
			{ID: 2, Name: "Steam"},
		},
		Groups: []models.PropertyGroup{
			{ID: 10, Name: "Status", SortOrder: 0, Values: []models.PropertyValue{
				{ID: 1, GroupID: 10, Name: "ok", Color: "#22c55e"},
				{ID: 2, GroupID: 10, Name: "banned", Color: "#ef4444"},
			}},
			{ID: 20, Name: "Region", SortOrder: 1, Values: []models.PropertyValue{
				{ID: 7, GroupID: 20, Name: "eu"},
			}},
		},
		Accounts: []models.Account{
			{
				ID: 1, TypeID: 1, Email: "alice@example.com", Password: "alice-pw",
				Tags: []string{"work"}, Combos: []models.Combo{{1, 7}}, Has2FA: true,
				LastUsed: ts(-time.Hour), CreatedAt: ts(-30 * 24 * time.Hour),
			},
			{
				ID: 2, TypeID: 2, Email: "bob@example.com", CustomName: "Bob Steam", Password: "bob-pw",
				Combos: []models.Combo{{2}}, IsFavorite: true,
				LastUsed: ts(-30 * 24 * time.Hour), CreatedAt: ts(-10 * 24 * time.Hour),
			},
			{
				ID: 3, TypeID: 1, Email: "carol@example.com", Password: "carol-pw",
				Combos: []models.Combo{{99}}, CreatedAt: ts(-24 * time.Hour),
			},
		},
	}
}

type fakePopup struct {
	mu     sync.Mutex
	opened []int64
	closed int
	frame  popup.Frame
	err    error
}

func (p *fakePopup) Open(_ context.Context, a models.Account) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opened = append(p.opened, a.ID)
	if p.err != nil {
		return p.err
	}
	p.frame = popup.Frame{
		State: popup.StateDisplaying, AccountID: a.ID, Title: a.DisplayName(),
		Code: "123456", Display: "123·456", Remaining: 20, Period: 30, Progress: 2.0 / 3,
	}
	return nil
}

func (p *fakePopup) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
	p.frame = popup.Frame{}
}

func (p *fakePopup) Current() popup.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

type fakeClip struct {
	mu      sync.Mutex
	plain   []string
	secrets []string
	err     error
}

func (c *fakeClip) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.plain = append(c.plain, text)
	return nil
}

func (c *fakeClip) CopySecret(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.secrets = append(c.secrets, text)
	return nil
}

type testHarness struct {
	model    *AccountsModel
	auth     *svcmock.MockAuthService
	accounts *svcmock.MockAccountService
	totp     *svcmock.MockTOTPService
	popup    *fakePopup
	clip     *fakeClip
}

// newHarness builds a list screen that already shows testSnapshot.
func newHarness(t *testing.T) *testHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &testHarness{
		auth:     svcmock.NewMockAuthService(ctrl),
		accounts: svcmock.NewMockAccountService(ctrl),
		totp:     svcmock.NewMockTOTPService(ctrl),
		popup:    &fakePopup{},
		clip:     &fakeClip{},
	}
	h.model = NewAccountsModel(context.Background(), Options{
		Services: &service.Services{
			AuthService:    h.auth,
			AccountService: h.accounts,
			TOTPService:    h.totp,
		},
		Popup:     h.popup,
		Clipboard: h.clip,
		Now:       func() time.Time { return testNow },
	}, logger.Nop())
	h.model.setSnapshot(testSnapshot())
	return h
}

func (h *testHarness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = h.model.Update(keyMsg(k))
	}
	return cmd
}

func (h *testHarness) visibleIDs() []int64 {
	ids := make([]int64, 0, len(h.model.visible))
	for _, a := range h.model.visible {
		ids = append(ids, a.ID)
	}
	return ids
}

// selectSidebar moves the sidebar cursor to the entry labelled label.
func (h *testHarness) selectSidebar(t *testing.T, label string) {
	t.Helper()
	for i, e := range h.model.sidebar {
		if e.label == label {
			h.model.sideCursor = i
			h.model.focus = focusSidebar
			return
		}
	}
	t.Fatalf("no sidebar entry %q", label)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// run executes cmd and every command of a batch it returns. Status timers
// must not be passed here since they sleep.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, run(c)...)
	}
	return out
}

// deliver feeds msgs back into the model and drops the returned commands.
func (h *testHarness) deliver(msgs ...tea.Msg) {
	for _, msg := range msgs {
		h.model.Update(msg)
	}
}
