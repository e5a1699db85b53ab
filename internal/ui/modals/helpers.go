package modals

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderSelectableList renders a simple list with selection highlighting.
// selectedIndex indicates which item is selected.
func RenderSelectableList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := ListItemStyle
		prefix := "  "
		if i == selectedIndex {
			style = ListSelectedStyle
			prefix = "> "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// TruncateString truncates a string to maxWidth terminal cells, ending it
// with an ellipsis when anything was cut.
func TruncateString(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "...")
}

// renderModal joins a title, body and help line the way every modal lays out.
func renderModal(title, body, help string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(title),
		body,
		ModalHelpStyle.Render(help),
	)
}
