package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " coderefine"

// Header represents the top header bar. It shows the signed-in user, the
// selected language and the loading indicator while a request is in flight.
type Header struct {
	width    int
	email    string
	language string
	loading  string
	spinner  spinner.Model
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle()),
		),
	}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUser sets the email shown on the right. Empty hides it.
func (h *Header) SetUser(email string) {
	h.email = email
}

// SetLanguage sets the language shown next to the user
func (h *Header) SetLanguage(lang string) {
	h.language = lang
}

// SetLoading shows label with a spinner, or hides the indicator when label
// is empty. The returned command starts the spinner when it was idle.
func (h *Header) SetLoading(label string) tea.Cmd {
	wasIdle := h.loading == ""
	h.loading = label
	if label != "" && wasIdle {
		return h.spinner.Tick
	}
	return nil
}

// IsLoading reports whether the loading indicator is visible
func (h *Header) IsLoading() bool {
	return h.loading != ""
}

// LoadingLabel returns the current loading label, empty when idle
func (h *Header) LoadingLabel() string {
	return h.loading
}

// UpdateSpinner advances the spinner. Ticks stop once loading is cleared.
func (h *Header) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if h.loading == "" {
		return nil
	}
	var cmd tea.Cmd
	h.spinner, cmd = h.spinner.Update(msg)
	return cmd
}

// View renders the header
func (h *Header) View() string {
	var right []string
	if h.loading != "" {
		right = append(right, h.spinner.View()+" "+h.loading)
	}
	if h.language != "" {
		right = append(right, h.language)
	}
	if h.email != "" {
		right = append(right, h.email)
	}
	rightText := ""
	if len(right) > 0 {
		rightText = strings.Join(right, "  ") + " "
	}

	paddingLen := max(0, h.width-runewidth.StringWidth(headerTitle)-runewidth.StringWidth(rightText))
	content := headerTitle + strings.Repeat(" ", paddingLen) + rightText

	mutedFrom := -1
	if h.email != "" {
		mutedFrom = len([]rune(content)) - len([]rune(h.email)) - 1
	}
	return renderGradient(content, len([]rune(headerTitle)), mutedFrom)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content over a background fading from the theme's
// primary color to its background. The first boldRunes runes are bold and
// runes from mutedFrom on use the muted text color (-1 for none).
func renderGradient(content string, boldRunes, mutedFrom int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < boldRunes).
			Foreground(textColor)
		if mutedFrom >= 0 && i >= mutedFrom {
			style = style.Foreground(mutedColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
