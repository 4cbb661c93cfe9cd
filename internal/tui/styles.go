package tui

import (
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Width(32).
			PaddingRight(2).
			Border(lipgloss.NormalBorder(), false, true, false, false)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee"))
	includedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Strikethrough(true)
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)

	codeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

var urgencyColors = map[otp.Urgency]lipgloss.Color{
	otp.UrgencyNormal:   lipgloss.Color("#22c55e"),
	otp.UrgencyWarning:  lipgloss.Color("#f59e0b"),
	otp.UrgencyCritical: lipgloss.Color("#ef4444"),
}

var noticeStyles = map[models.NoticeLevel]lipgloss.Style{
	models.NoticeInfo:    helpStyle,
	models.NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
	models.NoticeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	models.NoticeError:   errorStyle,
}

// badgeStyle colors a combo badge. Invalid combos render as a warning.
func badgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
