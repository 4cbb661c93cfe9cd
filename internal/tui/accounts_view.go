package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/charmbracelet/lipgloss"
)

const listHelp = "enter: 2FA │ c: copy password │ u: copy email │ l: sign in │ f: favorite │ d: delete │ b: batch │ /: search │ 1-3: sort │ tab: filters │ q: quit"

const sidebarHelp = "enter: include/exclude/clear │ -: exclude │ backspace: clear │ x: clear all │ tab: list"

const totpHelp = "t: 2FA setup │ i: import URI │ g: QR │ T: remove 2FA │ C: cleanup │ R: reload │ ctrl+l: sign out"

// View implements [tea.Model].
func (m *AccountsModel) View() string {
	var header strings.Builder
	header.WriteString(titleStyle.Render("AccBox"))
	fmt.Fprintf(&header, "  %d of %d", len(m.visible), len(m.snapshot.Accounts))
	if m.loading {
		header.WriteString("  loading...")
	}
	if m.batchMode {
		fmt.Fprintf(&header, "  batch: %d selected (space: select, enter: edit, esc: done)", len(m.selected))
	}
	header.WriteString("\n")
	header.WriteString(renderFilterBar(m.state, m.labels))
	if m.searching {
		header.WriteString("\n")
		header.WriteString(m.search.View())
	}

	columns := []string{
		renderSidebar(m.sidebar, m.state, m.counts, m.sideCursor, m.focus == focusSidebar),
		m.listView(),
	}
	if m.frame.State != popup.StateClosed {
		columns = append(columns, renderPopup(m.frame))
	}
	body := header.String() + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	if m.status.Message != "" {
		body += "\n\n" + noticeStyles[m.status.Level].Render(m.status.Message)
	}

	switch m.overlay {
	case overlayConfirm:
		body += "\n\n" + m.confirm.View()
	case overlayError:
		body += "\n\n" + m.errorOverlay.View()
	case overlayBatch:
		body += "\n\n" + m.batch.View(len(m.selected))
	case overlayTOTP:
		if m.totpForm != nil {
			body += "\n\n" + m.totpForm.View()
		}
	case overlayQR:
		body += "\n\n" + overlayBoxStyle.Render(m.qr+"\nesc close")
	}

	help := listHelp
	if m.focus == focusSidebar {
		help = sidebarHelp
	}
	body += "\n\n" + helpStyle.Render(help) + "\n" + helpStyle.Render(totpHelp)

	return appStyle.Render(body)
}

func (m *AccountsModel) listView() string {
	if len(m.visible) == 0 {
		if m.loading {
			return "Loading..."
		}
		if m.state.HasFilters() || m.state.Search() != "" {
			return "No accounts match the filters"
		}
		return "No accounts"
	}

	var b strings.Builder
	for i, a := range m.visible {
		line := renderAccountRow(a, m.snapshot, m.catalog, m.selected[a.ID], m.batchMode)
		if i == m.cursor && m.focus == focusList {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.TrimRight(b.String(), "\n"))
}
