package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/charmbracelet/bubbles/progress"
)

const popupBarWidth = 30

// renderPopup draws the 2FA popup for frame. A closed frame renders as "".
func renderPopup(frame popup.Frame) string {
	var b strings.Builder

	switch {
	case frame.State == popup.StateClosed:
		return ""
	case frame.State == popup.StateLoading:
		b.WriteString(titleStyle.Render(frame.Title))
		b.WriteString("\n\nLoading code...")
	case frame.Failed:
		b.WriteString(titleStyle.Render(frame.Title))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Code unavailable"))
	default:
		color := urgencyColors[frame.Urgency]
		bar := progress.New(
			progress.WithSolidFill(string(color)),
			progress.WithoutPercentage(),
			progress.WithWidth(popupBarWidth),
		)

		b.WriteString(titleStyle.Render(frame.Title))
		b.WriteString("\n\n")
		b.WriteString(codeStyle.Foreground(color).Render(frame.Display))
		b.WriteString("\n\n")
		b.WriteString(bar.ViewAs(frame.Progress))
		fmt.Fprintf(&b, " %2ds", frame.Remaining)
		if frame.Expiring {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render("expiring"))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("copied on open │ c: copy again"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: close"))
	return overlayBoxStyle.Render(b.String())
}
