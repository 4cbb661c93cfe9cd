package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *AccountsModel) cmdLoad() tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		snap, err := accounts.Load(ctx)
		return snapshotLoadedMsg{snapshot: snap, err: err}
	}
}

// cmdOpenPopup runs the blocking open in the background. Frames reach the
// model through the popup listener.
func (m *AccountsModel) cmdOpenPopup(a models.Account) tea.Cmd {
	ctx, p := m.ctx, m.popup
	return func() tea.Msg {
		return popupOpenedMsg{accountID: a.ID, err: p.Open(ctx, a)}
	}
}

// cmdCopy writes text with write. A failed copy has already been reported
// by the clipboard manager.
func cmdCopy(write func(string) error, text, done string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return nil
		}
		return noticeMsg{notice: models.Notice{Level: models.NoticeSuccess, Message: done}}
	}
}

func (m *AccountsModel) cmdRecordUse(id int64) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		return usedMsg{id: id, err: accounts.RecordUse(ctx, id)}
	}
}

func (m *AccountsModel) cmdToggleFavorite(id int64) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		fav, err := accounts.ToggleFavorite(ctx, id)
		return favoriteDoneMsg{id: id, favorite: fav, err: err}
	}
}

func (m *AccountsModel) cmdDelete(id int64) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: accounts.Delete(ctx, id)}
	}
}

func (m *AccountsModel) cmdBatch(selection []models.Account, req service.BatchRequest) tea.Cmd {
	ctx, accounts, catalog := m.ctx, m.accounts, m.catalog
	return func() tea.Msg {
		res, err := accounts.BatchApply(ctx, catalog, selection, req)
		return batchDoneMsg{result: res, err: err}
	}
}

func (m *AccountsModel) cmdCleanup(invalid []models.Account) tea.Cmd {
	ctx, accounts, catalog := m.ctx, m.accounts, m.catalog
	return func() tea.Msg {
		res, err := accounts.CleanupInvalid(ctx, catalog, invalid)
		return cleanupDoneMsg{result: res, err: err}
	}
}

func (m *AccountsModel) cmdSaveTOTP(id int64, cfg models.TOTPConfig) tea.Cmd {
	ctx, totp := m.ctx, m.totp
	return func() tea.Msg {
		if err := totp.Save(ctx, id, cfg); err != nil {
			return totpSavedMsg{id: id, err: err}
		}
		return totpSavedMsg{id: id, message: "2FA configuration saved"}
	}
}

func (m *AccountsModel) cmdImportURI(id int64, uri string) tea.Cmd {
	ctx, totp := m.ctx, m.totp
	return func() tea.Msg {
		res, err := totp.ImportURI(ctx, id, uri)
		if err != nil {
			return totpSavedMsg{id: id, err: err}
		}
		issuer := res.Issuer
		if issuer == "" {
			issuer = string(res.Type)
		}
		return totpSavedMsg{id: id, message: fmt.Sprintf("Imported %s 2FA (%d digits)", issuer, res.Digits)}
	}
}

func (m *AccountsModel) cmdDeleteTOTP(id int64) tea.Cmd {
	ctx, totp := m.ctx, m.totp
	return func() tea.Msg {
		return totpDeletedMsg{id: id, err: totp.Delete(ctx, id)}
	}
}

func (m *AccountsModel) cmdExportQR(a models.Account) tea.Cmd {
	ctx, totp := m.ctx, m.totp
	return func() tea.Msg {
		qr, err := totp.ExportQR(ctx, a.ID, a.Email)
		return qrReadyMsg{title: a.DisplayName(), qr: qr, err: err}
	}
}

// loginHint is the notice shown after the email was copied for a sign-in.
// Login URLs with an Email= parameter get the address appended.
func (m *AccountsModel) loginHint(a models.Account) string {
	t, ok := m.snapshot.Type(a.TypeID)
	if !ok || t.LoginURL == "" {
		return "Email copied"
	}
	link := t.LoginURL
	if strings.Contains(link, "Email=") {
		link += url.QueryEscape(a.Email)
	}
	return "Email copied, sign in at " + link
}
