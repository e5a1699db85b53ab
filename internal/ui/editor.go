package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/coderefine/coderefine/internal/editor"
)

// Editor is the left panel: a line-numbered textarea holding the code to
// analyze, with a status line showing its line and character counts.
type Editor struct {
	width    int
	height   int
	focused  bool
	language string
	input    textarea.Model
}

// NewEditor creates an empty editor panel
func NewEditor() *Editor {
	ta := textarea.New()
	ta.Placeholder = "Paste or type your code here..."
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	// The 500 line cap is enforced by the app through editor.Clamp
	ta.CharLimit = 0
	ta.MaxHeight = 0
	applyTextareaStyles(&ta)

	return &Editor{
		input:    ta,
		language: editor.DefaultLanguage,
	}
}

// applyTextareaStyles drops the textarea's default backgrounds so it sits on
// the terminal background inside the panel border.
func applyTextareaStyles(ta *textarea.Model) {
	styles := ta.Styles()

	base := lipgloss.NewStyle()
	text := lipgloss.NewStyle().Foreground(ColorText)
	muted := lipgloss.NewStyle().Foreground(ColorTextMuted)

	styles.Focused.Base = base
	styles.Focused.Text = text
	styles.Focused.Placeholder = muted
	styles.Focused.CursorLine = text
	styles.Focused.LineNumber = muted
	styles.Focused.CursorLineNumber = lipgloss.NewStyle().Foreground(ColorPrimary)
	styles.Focused.Prompt = text

	styles.Blurred = styles.Focused
	styles.Blurred.CursorLineNumber = muted

	ta.SetStyles(styles)
}

// SetSize sets the panel dimensions including its border
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	ctx := GetViewContext()
	e.input.SetWidth(ctx.InnerWidth(width))
	e.input.SetHeight(max(1, ctx.InnerHeight(height)-TitleHeight-StatsHeight))

	ctx.Log("Editor.SetSize", "outer", fmt.Sprintf("%dx%d", width, height), "textarea", e.input.Height())
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
}

// IsFocused returns whether the editor receives keystrokes
func (e *Editor) IsFocused() bool {
	return e.focused
}

// SetLanguage sets the language shown in the panel title
func (e *Editor) SetLanguage(lang string) {
	e.language = lang
}

// Value returns the full editor text
func (e *Editor) Value() string {
	return e.input.Value()
}

// SetValue replaces the editor text and moves the cursor to the end
func (e *Editor) SetValue(text string) {
	e.input.SetValue(text)
}

// InsertString inserts text at the cursor
func (e *Editor) InsertString(text string) {
	e.input.InsertString(text)
}

// Stats returns the line and character counts of the current text
func (e *Editor) Stats() (lines, chars int) {
	return editor.Stats(e.input.Value())
}

// Update forwards messages to the textarea
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// View renders the editor panel
func (e *Editor) View() string {
	panelStyle := PanelStyle
	if e.focused {
		panelStyle = PanelFocusedStyle
	}

	name := e.language
	if l, ok := editor.LookupLanguage(e.language); ok {
		name = l.Name
	}
	title := PanelTitleStyle.Render("Editor · " + name)

	lines, chars := e.Stats()
	stats := StatsStyle.Render(fmt.Sprintf("Lines: %d | Characters: %d", lines, chars))

	body := lipgloss.JoinVertical(lipgloss.Left, title, e.input.View(), stats)
	return panelStyle.Width(e.width).Height(e.height).Render(body)
}
