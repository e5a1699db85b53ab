package app

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/editor"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/session"
	"github.com/coderefine/coderefine/internal/ui/modals"
)

func (m *Model) handleAuthResultMsg(msg AuthResultMsg) (tea.Model, tea.Cmd) {
	if !m.finishRequest(RequestAuth, msg.Token) {
		return m, nil
	}
	if msg.Err != nil {
		logger.WithRequest(RequestAuth.String(), msg.Token).Warn("auth failed", "action", msg.Action.String(), "error", msg.Err)
		return m, m.ShowToastError(errorText(msg.Err))
	}

	switch msg.Action {
	case AuthSignIn:
		if err := session.Save(m.storage, msg.Session); err != nil {
			logger.Error("App: failed to persist session: %v", err)
			_ = session.Clear(m.storage)
			return m, m.ShowToastError(sessionSaveErrorText)
		}
		m.state.SignIn(msg.Session)
		m.hideModal()
		m.setMode(ModeEdit)
		cmds := []tea.Cmd{m.ShowToastSuccess("Login successful!")}
		if m.sharedLink != "" {
			cmds = append(cmds, m.loadSharedCmd(m.sharedLink))
			m.sharedLink = ""
		}
		return m, tea.Batch(cmds...)

	case AuthSignUp:
		m.showSignIn(msg.Email)
		return m, m.ShowToastSuccess("Account created! Please sign in.")

	case AuthReset:
		m.showSignIn("")
		return m, m.ShowToastSuccess("Password reset email sent!")
	}
	return m, nil
}

func (m *Model) handleAnalyzeResultMsg(msg AnalyzeResultMsg) (tea.Model, tea.Cmd) {
	if !m.finishRequest(RequestAnalyze, msg.Token) {
		return m, nil
	}
	if msg.Err != nil {
		logger.WithRequest(RequestAnalyze.String(), msg.Token).Warn("analyze failed", "error", msg.Err)
		return m, m.ShowToastError(errorText(msg.Err))
	}

	res := msg.Result
	m.state.Analysis = &res
	m.results.SetAnalysis(&res)
	return m, m.ShowToastSuccess("Analysis complete!")
}

func (m *Model) handleRefineResultMsg(msg RefineResultMsg) (tea.Model, tea.Cmd) {
	if !m.finishRequest(RequestRefine, msg.Token) {
		return m, nil
	}
	if msg.Err != nil {
		logger.WithRequest(RequestRefine.String(), msg.Token).Warn("refine failed", "error", msg.Err)
		return m, m.ShowToastError(errorText(msg.Err))
	}

	res := msg.Result
	m.state.Refinement = &res
	m.results.SetRefinement(&res)
	m.refreshChrome()

	cmds := []tea.Cmd{m.ShowToastSuccess("Code refined successfully!")}
	if m.config.GetNotificationsEnabled() && m.notify != nil {
		notify := m.notify
		cmds = append(cmds, func() tea.Msg {
			if err := notify(res.Action, res.Language); err != nil {
				logger.Warn("App: desktop notification failed: %v", err)
			}
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleFileLoadedMsg(msg FileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: failed to open %s: %v", msg.Path, msg.Err)
		return m, m.ShowToastError("Could not open " + filepath.Base(msg.Path))
	}
	if msg.Language != "" {
		m.setLanguage(msg.Language)
	}
	clampCmd := m.replaceText(msg.Text)
	return m, tea.Batch(clampCmd, m.ShowToastInfo("Loaded "+filepath.Base(msg.Path)))
}

func (m *Model) handleClipboardReadMsg(msg ClipboardReadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: clipboard read failed: %v", msg.Err)
		return m, m.ShowToastError("Could not read the clipboard")
	}
	return m, m.insertText(normalizePaste(msg.Text))
}

// handleClipboardWrittenMsg confirms a copy. When the system clipboard is
// unavailable the terminal is asked to set it instead.
func (m *Model) handleClipboardWrittenMsg(msg ClipboardWrittenMsg) (tea.Model, tea.Cmd) {
	toast := m.ShowToastSuccess("Link copied to clipboard!")
	if msg.Err != nil {
		logger.Warn("App: clipboard write failed, falling back to OSC 52: %v", msg.Err)
		return m, tea.Batch(tea.SetClipboard(msg.Text), toast)
	}
	return m, toast
}

func (m *Model) handleShareCreatedMsg(msg ShareCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: failed to store snippet: %v", msg.Err)
		return m, m.ShowToastError("Could not share the refined code")
	}
	logger.Info("App: shared snippet %s", msg.Snippet.ID)
	m.showModal(modals.NewShareState(msg.Snippet.Link()))
	return m, nil
}

// handleSharedLoadedMsg puts a shared snippet in the editor. Links that do
// not resolve are logged and otherwise ignored.
func (m *Model) handleSharedLoadedMsg(msg SharedLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("App: ignoring shared link %q: %v", msg.Link, msg.Err)
		return m, nil
	}
	if editor.IsLanguage(msg.Snippet.Language) {
		m.setLanguage(msg.Snippet.Language)
	}
	clampCmd := m.replaceText(msg.Snippet.Code)
	return m, tea.Batch(clampCmd, m.ShowToastSuccess("Shared code loaded!"))
}

func (m *Model) handleExportDoneMsg(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: export failed: %v", msg.Err)
		return m, m.ShowToastError(errorText(msg.Err))
	}
	logger.Info("App: exported %s", msg.Path)
	if msg.Format == exportDocument {
		return m, m.ShowToastInfo("Opening print dialog for PDF...")
	}
	return m, m.ShowToastSuccess("Code downloaded as TXT!")
}
