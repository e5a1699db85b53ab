package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables - these are set by the parent ui package via SetStyles
var (
	ModalTitleStyle   lipgloss.Style
	ModalHelpStyle    lipgloss.Style
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	StatusErrorStyle  lipgloss.Style
	ShareLinkStyle    lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color

	ModalInputWidth     int
	ModalInputCharLimit int
	ModalWidth          int
	HelpModalMaxVisible int
)

// Palette carries the theme colors the modals draw with.
type Palette struct {
	Primary     color.Color
	Secondary   color.Color
	Text        color.Color
	TextMuted   color.Color
	TextInverse color.Color
	Warning     color.Color
}

// Dimensions carries the modal layout constants owned by the ui package.
type Dimensions struct {
	InputWidth     int
	InputCharLimit int
	ModalWidth     int
	HelpMaxVisible int
}

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any modals.
func SetStyles(title, help, item, selected, statusError lipgloss.Style, p Palette, d Dimensions) {
	ModalTitleStyle = title
	ModalHelpStyle = help
	ListItemStyle = item
	ListSelectedStyle = selected
	StatusErrorStyle = statusError
	ShareLinkStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorText = p.Text
	ColorTextMuted = p.TextMuted
	ColorTextInverse = p.TextInverse
	ColorWarning = p.Warning

	ModalInputWidth = d.InputWidth
	ModalInputCharLimit = d.InputCharLimit
	ModalWidth = d.ModalWidth
	HelpModalMaxVisible = d.HelpMaxVisible
}
