package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

// =============================================================================
// OpenFileState - path prompt for loading a source file into the editor
// =============================================================================

type OpenFileState struct {
	path string

	form        *huh.Form
	initialized bool
}

func (*OpenFileState) modalState() {}

func (s *OpenFileState) Title() string { return "Open File" }

func (s *OpenFileState) Help() string {
	return "Enter: load into editor  Esc: cancel"
}

func (s *OpenFileState) Render() string {
	return renderModal(s.Title(), s.form.View(), s.Help())
}

func (s *OpenFileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetPath returns the entered path, trimmed.
func (s *OpenFileState) GetPath() string {
	return strings.TrimSpace(s.path)
}

func NewOpenFileState() *OpenFileState {
	s := &OpenFileState{}
	s.form = newModalForm(
		huh.NewInput().
			Title("Path").
			Description("The language is detected from the file extension").
			Placeholder("./main.py").
			CharLimit(ModalInputCharLimit).
			Value(&s.path),
	)
	s.initialized = true
	initHuhForm(s.form)
	return s
}
