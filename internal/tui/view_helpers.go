package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const dividerWidth = 54

var divider = strings.Repeat("─", dividerWidth)

// viewTitle is the heading of an overlay.
func viewTitle(title string) string {
	return title + "\n" + divider + "\n"
}

// renderPage frames a full-screen page: styled title, indented body and the
// page's own key hints above the global quit hint.
func renderPage(title, body, hints string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	indent := lipgloss.NewStyle().PaddingLeft(2)

	parts := []string{
		titleStyle.Render(title),
		indent.Render(divider),
		"",
		indent.Render(body),
		"",
		indent.Render(divider),
	}
	if strings.TrimSpace(hints) != "" {
		parts = append(parts, indent.Render(helpStyle.Render(hints)))
	}
	parts = append(parts, indent.Render(helpStyle.Render("ctrl+c: quit")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fitText shortens v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
