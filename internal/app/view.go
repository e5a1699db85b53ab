package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/coderefine/coderefine/internal/ui"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render())
	return v
}

// render draws the screen as a string
func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	ctx := ui.GetViewContext()

	var content string
	switch {
	case m.modal.IsVisible():
		content = m.modal.View(ctx.TerminalWidth, ctx.ContentHeight)
	case m.state.SignedIn():
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), m.results.View())
	default:
		content = lipgloss.Place(ctx.TerminalWidth, ctx.ContentHeight, lipgloss.Center, lipgloss.Center,
			ui.PlaceholderStyle.Render("Press any key to sign in"))
	}
	content = m.toasts.Overlay(content, ctx.TerminalWidth)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}
