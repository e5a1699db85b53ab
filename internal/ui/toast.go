package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ToastSeverity selects the color of a toast
type ToastSeverity int

const (
	ToastDefault ToastSeverity = iota
	ToastSuccess
	ToastError
	ToastInfo
)

func (s ToastSeverity) String() string {
	switch s {
	case ToastSuccess:
		return "success"
	case ToastError:
		return "error"
	case ToastInfo:
		return "info"
	default:
		return "default"
	}
}

// Toast is one ephemeral message in the stack
type Toast struct {
	ID       uint64
	Text     string
	Severity ToastSeverity
	Exiting  bool
}

// ToastExitMsg starts the exit phase of a toast
type ToastExitMsg struct{ ID uint64 }

// ToastRemoveMsg removes a toast after its exit phase
type ToastRemoveMsg struct{ ID uint64 }

// Toasts is the stack of visible toasts, oldest first
type Toasts struct {
	items  []Toast
	nextID uint64
}

// NewToasts creates an empty toast stack
func NewToasts() *Toasts {
	return &Toasts{}
}

// Push appends a toast and returns the command that expires it.
func (t *Toasts) Push(text string, severity ToastSeverity) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, Toast{ID: id, Text: text, Severity: severity})
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExitMsg{ID: id}
	})
}

// Update handles the toast timing messages. Unknown ids are ignored.
func (t *Toasts) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ToastExitMsg:
		for i := range t.items {
			if t.items[i].ID == msg.ID {
				t.items[i].Exiting = true
				id := msg.ID
				return tea.Tick(ToastExitDuration, func(time.Time) tea.Msg {
					return ToastRemoveMsg{ID: id}
				})
			}
		}
	case ToastRemoveMsg:
		for i := range t.items {
			if t.items[i].ID == msg.ID {
				t.items = append(t.items[:i], t.items[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Items returns a copy of the visible toasts, oldest first
func (t *Toasts) Items() []Toast {
	out := make([]Toast, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of visible toasts
func (t *Toasts) Len() int {
	return len(t.items)
}

// Lines renders each toast as one line no wider than width.
func (t *Toasts) Lines(width int) []string {
	maxWidth := min(width, ToastMaxWidth)
	lines := make([]string, 0, len(t.items))
	for _, toast := range t.items {
		style, ok := ToastStyles[toast.Severity]
		if !ok {
			style = ToastStyles[ToastDefault]
		}
		if toast.Exiting {
			style = style.Faint(true)
		}
		// border and padding take three cells
		text := ansi.Truncate(toast.Text, max(1, maxWidth-3), "…")
		lines = append(lines, style.Render(text))
	}
	return lines
}

// Overlay replaces the bottom lines of content with the toast stack, right
// aligned within width, so the layout never shifts when toasts come and go.
func (t *Toasts) Overlay(content string, width int) string {
	if len(t.items) == 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	toastLines := t.Lines(width)
	if len(toastLines) > len(lines) {
		toastLines = toastLines[len(toastLines)-len(lines):]
	}
	start := max(0, len(lines)-len(toastLines))
	for i := start; i < len(lines); i++ {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, toastLines[i-start])
	}
	return strings.Join(lines, "\n")
}
