package tui

import (
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page when the API answers.
type LoginResult struct {
	User models.User
	Err  error
}

type snapshotLoadedMsg struct {
	snapshot models.Snapshot
	err      error
}

type noticeMsg struct {
	notice models.Notice
}

type popupFrameMsg struct {
	frame popup.Frame
}

type popupOpenedMsg struct {
	accountID int64
	err       error
}

type favoriteDoneMsg struct {
	id       int64
	favorite bool
	err      error
}

type deleteDoneMsg struct {
	id  int64
	err error
}

type usedMsg struct {
	id  int64
	err error
}

type batchDoneMsg struct {
	result service.BatchResult
	err    error
}

type cleanupDoneMsg struct {
	result service.CleanupResult
	err    error
}

type totpSavedMsg struct {
	id      int64
	message string
	err     error
}

type totpDeletedMsg struct {
	id  int64
	err error
}

type qrReadyMsg struct {
	title string
	qr    string
	err   error
}

type clearStatusMsg struct {
	seq int
}

// quitMsg asks [RootModel] to stop the program on behalf of the user.
type quitMsg struct{}

func cmdQuit() tea.Msg { return quitMsg{} }
