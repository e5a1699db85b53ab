package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/keys"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/ui/modals"
)

// handleModalKey handles key presses while a modal is visible. Keys a modal
// does not claim go to its form.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *modals.SignInState:
		return m.handleSignInModal(msg, s)
	case *modals.SignUpState:
		return m.handleSignUpModal(msg, s)
	case *modals.ResetPasswordState:
		return m.handleResetPasswordModal(msg, s)
	case *modals.LanguagePickerState:
		return m.handleLanguageModal(msg, s)
	case *modals.OpenFileState:
		return m.handleOpenFileModal(msg, s)
	case *modals.ShareState:
		return m.handleShareModal(msg)
	case *modals.HelpState:
		return m.handleHelpModal(msg, s)
	}
	return m.forwardToModal(msg)
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleSignInModal(msg tea.KeyPressMsg, s *modals.SignInState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		if err := s.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.SetError("")
		email, password := s.GetValues()
		return m, m.signIn(email, password)
	case keys.CtrlN:
		m.showSignUp()
		return m, nil
	case keys.CtrlR:
		m.showResetPassword()
		return m, nil
	case keys.Escape:
		// Already on the first form
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleSignUpModal(msg tea.KeyPressMsg, s *modals.SignUpState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		if err := s.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.SetError("")
		username, email, password := s.GetValues()
		return m, m.signUp(username, email, password)
	case keys.CtrlR:
		m.showResetPassword()
		return m, nil
	case keys.Escape:
		m.showSignIn("")
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleResetPasswordModal(msg tea.KeyPressMsg, s *modals.ResetPasswordState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		if err := s.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.SetError("")
		return m, m.resetPassword(s.GetEmail())
	case keys.CtrlN:
		m.showSignUp()
		return m, nil
	case keys.Escape:
		m.showSignIn("")
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleLanguageModal applies the picked language and saves it as the
// default for the next run.
func (m *Model) handleLanguageModal(msg tea.KeyPressMsg, s *modals.LanguagePickerState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		lang := s.GetSelectedLanguage()
		m.hideModal()
		m.setLanguage(lang)

		if err := m.config.SetDefaultLanguage(lang); err != nil {
			logger.Warn("App: rejected language %q: %v", lang, err)
			return m, nil
		}
		return m, m.saveConfigOrToast()
	case keys.Escape:
		m.hideModal()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleOpenFileModal(msg tea.KeyPressMsg, s *modals.OpenFileState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		path := s.GetPath()
		if path == "" {
			m.modal.SetError("path is required")
			return m, nil
		}
		m.hideModal()
		m.setMode(ModeEdit)
		return m, loadFileCmd(path)
	case keys.Escape:
		m.hideModal()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleShareModal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter, keys.Escape:
		m.hideModal()
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleHelpModal runs the selected shortcut on enter. While the filter is
// being typed every key belongs to the list.
func (m *Model) handleHelpModal(msg tea.KeyPressMsg, s *modals.HelpState) (tea.Model, tea.Cmd) {
	if s.IsFiltering() {
		return m.forwardToModal(msg)
	}
	switch msg.String() {
	case keys.Enter:
		sc := s.GetSelectedShortcut()
		m.hideModal()
		if sc == nil {
			return m, nil
		}
		key := sc.Key
		return m, func() tea.Msg { return modals.HelpShortcutTriggeredMsg{Key: key} }
	case keys.Escape, "?", "q":
		m.hideModal()
		return m, nil
	}
	return m.forwardToModal(msg)
}

// saveConfigOrToast saves the config, turning a failure into an error toast
func (m *Model) saveConfigOrToast() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
		return m.ShowToastError("Failed to save settings")
	}
	return nil
}
