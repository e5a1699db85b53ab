package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of bindings the footer shows
type FooterMode int

const (
	FooterAuth FooterMode = iota
	FooterEdit
	FooterCommand
	FooterModal
)

func (m FooterMode) label() string {
	switch m {
	case FooterAuth:
		return "AUTH"
	case FooterEdit:
		return "EDIT"
	case FooterCommand:
		return "COMMAND"
	case FooterModal:
		return "DIALOG"
	default:
		return ""
	}
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	mode      FooterMode
	hasResult bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{mode: FooterAuth}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings.
// hasResult enables the apply, export and share bindings.
func (f *Footer) SetContext(mode FooterMode, hasResult bool) {
	f.mode = mode
	f.hasResult = hasResult
}

// Bindings returns the bindings for the current context
func (f *Footer) Bindings() []KeyBinding {
	switch f.mode {
	case FooterAuth:
		return []KeyBinding{
			{Key: "enter", Desc: "submit"},
			{Key: "tab", Desc: "next field"},
			{Key: "ctrl+n", Desc: "sign up"},
			{Key: "ctrl+r", Desc: "reset"},
			{Key: "esc", Desc: "sign in"},
		}
	case FooterEdit:
		return []KeyBinding{
			{Key: "esc", Desc: "commands"},
			{Key: "tab", Desc: "indent"},
			{Key: "ctrl+v", Desc: "paste"},
			{Key: "ctrl+o", Desc: "open file"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case FooterModal:
		return []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "close"},
		}
	}

	bindings := []KeyBinding{
		{Key: "a", Desc: "analyze"},
		{Key: "b/p/r", Desc: "fix/optimize/refactor"},
	}
	if f.hasResult {
		bindings = append(bindings,
			KeyBinding{Key: "y", Desc: "apply"},
			KeyBinding{Key: "t/d", Desc: "txt/pdf"},
			KeyBinding{Key: "s", Desc: "share"},
		)
	}
	return append(bindings,
		KeyBinding{Key: "l", Desc: "language"},
		KeyBinding{Key: "i", Desc: "edit"},
		KeyBinding{Key: "?", Desc: "help"},
		KeyBinding{Key: "q", Desc: "quit"},
	)
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := FooterModeStyle.Render(f.mode.label()) + " " + strings.Join(parts, sep)

	// FooterStyle pads one cell on each side
	if avail := f.width - 2; avail > 0 && ansi.StringWidth(content) > avail {
		content = ansi.Truncate(content, avail, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
