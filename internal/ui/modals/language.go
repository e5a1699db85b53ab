package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"

	"github.com/coderefine/coderefine/internal/editor"
)

// =============================================================================
// LanguagePickerState - choose the language sent with analyze/refine
// =============================================================================

type LanguagePickerState struct {
	language string

	form        *huh.Form
	initialized bool
}

func (*LanguagePickerState) modalState() {}

func (s *LanguagePickerState) Title() string { return "Language" }

func (s *LanguagePickerState) Help() string {
	return "up/down: choose  Enter: select  Esc: cancel"
}

func (s *LanguagePickerState) Render() string {
	return renderModal(s.Title(), s.form.View(), s.Help())
}

func (s *LanguagePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// GetSelectedLanguage returns the language id under the cursor.
func (s *LanguagePickerState) GetSelectedLanguage() string {
	return s.language
}

// NewLanguagePickerState creates the picker with current preselected.
// An unknown current falls back to the default language.
func NewLanguagePickerState(current string) *LanguagePickerState {
	if !editor.IsLanguage(current) {
		current = editor.DefaultLanguage
	}
	s := &LanguagePickerState{language: current}

	langs := editor.Languages()
	options := make([]huh.Option[string], len(langs))
	for i, l := range langs {
		options[i] = huh.NewOption(l.Name, l.ID)
	}

	s.form = newModalForm(
		huh.NewSelect[string]().
			Options(options...).
			Height(len(options) + 1).
			Value(&s.language),
	)
	s.initialized = true
	initHuhForm(s.form)
	return s
}
