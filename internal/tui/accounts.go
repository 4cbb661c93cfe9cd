// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/accbox/internal/combo"
	"github.com/MKhiriev/accbox/internal/filter"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

type focusArea int

const (
	focusList focusArea = iota
	focusSidebar
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayConfirm
	overlayError
	overlayBatch
	overlayTOTP
	overlayQR
)

// AccountsModel is the main screen: the filter sidebar, the filtered and
// sorted account list and the 2FA popup on top of it.
type AccountsModel struct {
	ctx      context.Context
	auth     service.AuthService
	accounts service.AccountService
	totp     service.TOTPService
	popup    PopupController
	clip     Copier
	now      func() time.Time
	logger   *logger.Logger

	snapshot models.Snapshot
	catalog  *combo.Catalog
	state    filter.State
	visible  []models.Account
	counts   filter.Counts
	sidebar  []sidebarEntry
	labels   map[filter.Key]string

	cursor     int
	sideCursor int
	focus      focusArea
	loading    bool

	search    textinput.Model
	searching bool

	batchMode bool
	selected  map[int64]bool
	batch     batchModel

	frame popup.Frame

	overlay      overlayKind
	confirm      confirmModel
	errorOverlay errorOverlayModel
	totpForm     *totpFormModel
	qr           string

	status    models.Notice
	statusSeq int
}

// NewAccountsModel creates the list screen. Nothing is loaded until Init.
func NewAccountsModel(ctx context.Context, opts Options, log *logger.Logger) *AccountsModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "email, name or tag"
	search.CharLimit = 128
	search.Width = 40

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := &AccountsModel{
		ctx:      ctx,
		auth:     opts.Services.AuthService,
		accounts: opts.Services.AccountService,
		totp:     opts.Services.TOTPService,
		popup:    opts.Popup,
		clip:     opts.Clipboard,
		now:      now,
		logger:   log,
		catalog:  combo.NewCatalog(nil),
		state:    filter.NewState(),
		search:   search,
		selected: make(map[int64]bool),
	}
	m.refresh()
	return m
}

// Init implements [tea.Model]. It loads the snapshot.
func (m *AccountsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

// Update implements [tea.Model].
func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.setSnapshot(msg.snapshot)
		return m, nil

	case noticeMsg:
		return m, m.setStatus(msg.notice)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = models.Notice{}
		}
		return m, nil

	case popupFrameMsg:
		// Frames are delivered from goroutines and may arrive out of order,
		// so the manager's current frame wins.
		m.frame = m.popup.Current()
		return m, nil

	case popupOpenedMsg:
		m.frame = m.popup.Current()
		if errors.Is(msg.err, service.ErrSessionExpired) {
			return m, m.fail(msg.err)
		}
		return m, nil

	case favoriteDoneMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.updateAccount(msg.id, func(a *models.Account) { a.IsFavorite = msg.favorite })
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.removeAccount(msg.id)
		return m, m.setStatus(models.Notice{Level: models.NoticeSuccess, Message: "Account deleted"})

	case usedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Int64("account_id", msg.id).Msg("failed to record account use")
			return m, nil
		}
		used := m.now()
		m.updateAccount(msg.id, func(a *models.Account) { a.LastUsed = models.Timestamp{Time: used} })
		return m, nil

	case batchDoneMsg:
		return m, m.finishBatch(msg)

	case cleanupDoneMsg:
		return m, m.finishCleanup(msg)

	case totpSavedMsg:
		if msg.err != nil {
			if m.totpForm != nil {
				m.totpForm.submitting = false
				m.totpForm.errMsg = humanizeServerUnavailableError(msg.err)
			}
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.fail(msg.err)
			}
			return m, nil
		}
		m.overlay = overlayNone
		m.totpForm = nil
		m.updateAccount(msg.id, func(a *models.Account) { a.Has2FA = true })
		return m, m.setStatus(models.Notice{Level: models.NoticeSuccess, Message: msg.message})

	case totpDeletedMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		if m.frame.AccountID == msg.id {
			m.popup.Close()
			m.frame = m.popup.Current()
		}
		m.updateAccount(msg.id, func(a *models.Account) { a.Has2FA = false })
		return m, m.setStatus(models.Notice{Level: models.NoticeSuccess, Message: "2FA configuration removed"})

	case qrReadyMsg:
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.qr = viewTitle("2FA export: "+msg.title) + msg.qr
		m.overlay = overlayQR
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	if m.overlay == overlayTOTP && m.totpForm != nil {
		var cmd tea.Cmd
		m.totpForm.inputs[m.totpForm.focus], cmd = m.totpForm.inputs[m.totpForm.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AccountsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayError, overlayQR:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.overlay = overlayNone
			m.qr = ""
		}
		return m, nil
	case overlayConfirm:
		return m.updateConfirm(msg)
	case overlayBatch:
		return m.updateBatch(msg)
	case overlayTOTP:
		return m.updateTOTPForm(msg)
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	if m.frame.State != popup.StateClosed {
		switch {
		case key.Matches(msg, keys.esc):
			m.popup.Close()
			m.frame = m.popup.Current()
			return m, nil
		case key.Matches(msg, keys.copy):
			if m.frame.Code == "" {
				return m, nil
			}
			return m, cmdCopy(m.clip.CopySecret, m.frame.Code, "2FA code copied")
		}
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, cmdQuit
	case key.Matches(msg, keys.logout):
		return m, m.signOut(models.Notice{Level: models.NoticeInfo, Message: "Signed out"})
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.focus == focusList {
			m.focus = focusSidebar
		} else {
			m.focus = focusList
		}
		return m, nil
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.clearAll):
		m.apply(filter.ClearAll{})
		return m, nil
	case key.Matches(msg, keys.sortRec):
		m.apply(filter.SetSort{Field: filter.SortRecent})
		return m, nil
	case key.Matches(msg, keys.sortName):
		m.apply(filter.SetSort{Field: filter.SortName})
		return m, nil
	case key.Matches(msg, keys.sortNew):
		m.apply(filter.SetSort{Field: filter.SortCreated})
		return m, nil
	case key.Matches(msg, keys.cleanup):
		return m, m.askCleanup()
	}

	if m.focus == focusSidebar {
		return m.updateSidebar(msg)
	}
	return m.updateList(msg)
}

func (m *AccountsModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.sideCursor > 0 {
			m.sideCursor--
		}
	case key.Matches(msg, keys.down):
		if m.sideCursor < len(m.sidebar)-1 {
			m.sideCursor++
		}
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.toggle):
		if k, ok := m.sideKey(); ok {
			m.apply(filter.Activate{Key: k})
		}
	case key.Matches(msg, keys.exclude):
		if k, ok := m.sideKey(); ok {
			m.apply(filter.Secondary{Key: k})
		}
	case key.Matches(msg, keys.clearKey):
		if k, ok := m.sideKey(); ok {
			m.apply(filter.ClearKey{Key: k})
		}
	case key.Matches(msg, keys.esc):
		m.focus = focusList
	}
	return m, nil
}

func (m *AccountsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.batch):
		m.batchMode = !m.batchMode
		clear(m.selected)
		return m, nil
	}

	if m.batchMode {
		switch {
		case key.Matches(msg, keys.toggle):
			if a, ok := m.current(); ok {
				if m.selected[a.ID] {
					delete(m.selected, a.ID)
				} else {
					m.selected[a.ID] = true
				}
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			if len(m.selected) == 0 {
				return m, m.setStatus(models.Notice{Level: models.NoticeWarning, Message: errNoSelection.Error()})
			}
			m.batch = newBatchModel(m.catalog)
			m.overlay = overlayBatch
			return m, nil
		case key.Matches(msg, keys.esc):
			m.batchMode = false
			clear(m.selected)
			return m, nil
		}
	}

	a, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.code):
		return m, m.cmdOpenPopup(a)
	case key.Matches(msg, keys.copy):
		return m, tea.Batch(cmdCopy(m.clip.CopySecret, a.Password, "Password copied"), m.cmdRecordUse(a.ID))
	case key.Matches(msg, keys.copyUser):
		return m, cmdCopy(m.clip.Copy, a.Email, "Email copied")
	case key.Matches(msg, keys.login):
		return m, tea.Batch(cmdCopy(m.clip.Copy, a.Email, m.loginHint(a)), m.cmdRecordUse(a.ID))
	case key.Matches(msg, keys.favorite):
		return m, m.cmdToggleFavorite(a.ID)
	case key.Matches(msg, keys.delete):
		m.ask(fmt.Sprintf("Delete %q?", a.DisplayName()), func() tea.Cmd { return m.cmdDelete(a.ID) })
		return m, nil
	case key.Matches(msg, keys.totpEdit):
		m.totpForm = newTOTPConfigForm(a)
		m.overlay = overlayTOTP
		return m, textinput.Blink
	case key.Matches(msg, keys.totpURI):
		m.totpForm = newTOTPURIForm(a)
		m.overlay = overlayTOTP
		return m, textinput.Blink
	case key.Matches(msg, keys.totpQR):
		if !a.Has2FA {
			return m, m.setStatus(models.Notice{Level: models.NoticeWarning, Message: "2FA is not configured for " + a.DisplayName()})
		}
		return m, m.cmdExportQR(a)
	case key.Matches(msg, keys.totpDrop):
		if !a.Has2FA {
			return m, nil
		}
		m.ask(fmt.Sprintf("Remove 2FA from %q?", a.DisplayName()), func() tea.Cmd { return m.cmdDeleteTOTP(a.ID) })
		return m, nil
	}
	return m, nil
}

func (m *AccountsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.apply(filter.SetSearch{Text: ""})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Search() {
		m.apply(filter.SetSearch{Text: m.search.Value()})
	}
	return m, cmd
}

func (m *AccountsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.overlay = overlayNone
		onYes := m.confirm.onYes
		m.confirm = confirmModel{}
		if onYes == nil {
			return m, nil
		}
		return m, onYes()
	case key.Matches(msg, keys.no):
		m.overlay = overlayNone
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m *AccountsModel) updateBatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.batch.submitting {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
	case key.Matches(msg, keys.up):
		m.batch.move(-1)
	case key.Matches(msg, keys.down):
		m.batch.move(1)
	case key.Matches(msg, keys.toggle):
		m.batch.toggle()
	case key.Matches(msg, keys.mode):
		m.batch.switchMode()
	case key.Matches(msg, keys.add), key.Matches(msg, keys.remove):
		req := m.batch.request(key.Matches(msg, keys.remove))
		if len(req.Values) == 0 {
			return m, m.setStatus(models.Notice{Level: models.NoticeWarning, Message: errNoValues.Error()})
		}
		m.batch.submitting = true
		return m, m.cmdBatch(m.selectedAccounts(), req)
	}
	return m, nil
}

func (m *AccountsModel) updateTOTPForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.totpForm
	if f == nil {
		m.overlay = overlayNone
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		m.totpForm = nil
		return m, nil
	case key.Matches(msg, keys.tab):
		f.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		f.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if f.submitting {
			return m, nil
		}
		f.errMsg = ""
		if f.kind == totpFormURI {
			uri, err := f.uri()
			if err != nil {
				f.errMsg = err.Error()
				return m, nil
			}
			f.submitting = true
			return m, m.cmdImportURI(f.account.ID, uri)
		}
		cfg, err := f.config()
		if err != nil {
			f.errMsg = err.Error()
			return m, nil
		}
		f.submitting = true
		return m, m.cmdSaveTOTP(f.account.ID, cfg)
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m *AccountsModel) askCleanup() tea.Cmd {
	var invalid []models.Account
	for _, a := range m.snapshot.Accounts {
		if m.catalog.HasInvalid(a) {
			invalid = append(invalid, a)
		}
	}
	if len(invalid) == 0 {
		return m.setStatus(models.Notice{Level: models.NoticeInfo, Message: "No invalid combos"})
	}
	m.ask(fmt.Sprintf("Remove invalid combos from %d account(s)?", len(invalid)), func() tea.Cmd {
		return m.cmdCleanup(invalid)
	})
	return nil
}

func (m *AccountsModel) finishBatch(msg batchDoneMsg) tea.Cmd {
	m.overlay = overlayNone
	m.batch.submitting = false
	m.batchMode = false
	clear(m.selected)
	m.mergeAccounts(msg.result.Updated)

	text := fmt.Sprintf("Updated %d, unchanged %d", len(msg.result.Updated), msg.result.Unchanged)
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrSessionExpired) {
			return m.fail(msg.err)
		}
		m.logger.Warn().Err(msg.err).Msg("batch edit finished with errors")
		return m.setStatus(models.Notice{Level: models.NoticeWarning, Message: fmt.Sprintf("%s, failed %d", text, msg.result.Failed)})
	}
	return m.setStatus(models.Notice{Level: models.NoticeSuccess, Message: text})
}

func (m *AccountsModel) finishCleanup(msg cleanupDoneMsg) tea.Cmd {
	m.mergeAccounts(msg.result.Updated)

	text := fmt.Sprintf("Removed %d invalid combo(s) from %d account(s)", msg.result.Removed, len(msg.result.Updated))
	if msg.err != nil {
		if errors.Is(msg.err, service.ErrSessionExpired) {
			return m.fail(msg.err)
		}
		m.logger.Warn().Err(msg.err).Msg("combo cleanup finished with errors")
		return m.setStatus(models.Notice{Level: models.NoticeWarning, Message: fmt.Sprintf("%s, failed %d", text, msg.result.Failed)})
	}
	return m.setStatus(models.Notice{Level: models.NoticeSuccess, Message: text})
}

// fail shows err. An expired session returns to the login page.
func (m *AccountsModel) fail(err error) tea.Cmd {
	if errors.Is(err, service.ErrSessionExpired) {
		return m.signOut(models.Notice{Level: models.NoticeWarning, Message: err.Error()})
	}
	m.logger.Error().Err(err).Msg("request failed")
	m.errorOverlay.message = humanizeServerUnavailableError(err)
	m.overlay = overlayError
	return nil
}

func (m *AccountsModel) signOut(n models.Notice) tea.Cmd {
	m.auth.Logout()
	m.popup.Close()
	m.frame = m.popup.Current()
	m.overlay = overlayNone
	m.batchMode = false
	clear(m.selected)
	m.setSnapshot(models.Snapshot{})
	return func() tea.Msg {
		return NavigateTo{Page: pageLogin, Payload: noticeMsg{notice: n}}
	}
}

func (m *AccountsModel) ask(message string, onYes func() tea.Cmd) {
	m.confirm = confirmModel{message: message, onYes: onYes}
	m.overlay = overlayConfirm
}

func (m *AccountsModel) setStatus(n models.Notice) tea.Cmd {
	m.status = n
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *AccountsModel) apply(a filter.Action) {
	m.state = filter.Apply(m.state, a)
	m.refresh()
}

func (m *AccountsModel) setSnapshot(s models.Snapshot) {
	m.snapshot = s
	m.catalog = combo.NewCatalog(s.Groups)
	m.refresh()
}

// refresh recomputes everything derived from the snapshot and the state.
func (m *AccountsModel) refresh() {
	matcher := filter.NewMatcher(m.catalog, m.snapshot.Types, m.now())
	m.visible = matcher.Filter(m.state, m.snapshot.Accounts)
	m.counts = matcher.Count(m.snapshot.Accounts)
	m.sidebar = buildSidebar(m.snapshot, m.catalog, m.counts)

	m.labels = make(map[filter.Key]string, len(m.sidebar))
	for _, e := range m.sidebar {
		m.labels[e.key] = e.label
	}

	m.cursor = clampIndex(m.cursor, len(m.visible))
	m.sideCursor = clampIndex(m.sideCursor, len(m.sidebar))
}

func (m *AccountsModel) current() (models.Account, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return models.Account{}, false
	}
	return m.visible[m.cursor], true
}

func (m *AccountsModel) sideKey() (filter.Key, bool) {
	if m.sideCursor < 0 || m.sideCursor >= len(m.sidebar) {
		return filter.Key{}, false
	}
	return m.sidebar[m.sideCursor].key, true
}

// selectedAccounts returns the batch selection in snapshot order.
func (m *AccountsModel) selectedAccounts() []models.Account {
	var out []models.Account
	for _, a := range m.snapshot.Accounts {
		if m.selected[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func (m *AccountsModel) updateAccount(id int64, fn func(*models.Account)) {
	accounts := slices.Clone(m.snapshot.Accounts)
	for i := range accounts {
		if accounts[i].ID == id {
			fn(&accounts[i])
		}
	}
	m.snapshot.Accounts = accounts
	m.refresh()
}

func (m *AccountsModel) removeAccount(id int64) {
	m.snapshot.Accounts = slices.DeleteFunc(slices.Clone(m.snapshot.Accounts), func(a models.Account) bool {
		return a.ID == id
	})
	delete(m.selected, id)
	m.refresh()
}

func (m *AccountsModel) mergeAccounts(updated []models.Account) {
	if len(updated) == 0 {
		return
	}
	byID := make(map[int64]models.Account, len(updated))
	for _, a := range updated {
		byID[a.ID] = a
	}
	accounts := slices.Clone(m.snapshot.Accounts)
	for i, a := range accounts {
		if u, ok := byID[a.ID]; ok {
			accounts[i] = u
		}
	}
	m.snapshot.Accounts = accounts
	m.refresh()
}

func clampIndex(i, n int) int {
	switch {
	case n == 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	}
	return i
}
