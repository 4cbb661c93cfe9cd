package tui

// errorOverlayModel blocks the list until the user dismisses the failure.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		viewTitle(errorStyle.Render("Something went wrong")) +
			"\n" + m.message + "\n\n" +
			helpStyle.Render("enter / esc: dismiss"),
	)
}
