package tui

// errorOverlayModel blocks the list until a failure is acknowledged. It is
// used where the status line is not enough, e.g. when signing out fails and
// the session is still open.
type errorOverlayModel struct {
	heading string
	message string
}

func newErrorOverlay(heading string, err error) *errorOverlayModel {
	return &errorOverlayModel{heading: heading, message: describeError(err)}
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render(m.heading) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter/esc: close"),
	)
}
