package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/editor"
	"github.com/coderefine/coderefine/internal/export"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/session"
	"github.com/coderefine/coderefine/internal/ui/modals"
)

// Loading labels shown in the header
const (
	loadingSignIn  = "Signing in..."
	loadingSignUp  = "Creating account..."
	loadingReset   = "Sending reset email..."
	loadingAnalyze = "Analyzing..."
	loadingRefine  = "Refining..."
)

const lineLimitText = "Code limited to 500 lines"

// sessionSaveErrorText is shown when a successful sign-in cannot be stored
const sessionSaveErrorText = "Could not save your session"

// beginRequest issues a token for kind and shows label in the header
func (m *Model) beginRequest(kind RequestKind, label string) (uint64, tea.Cmd) {
	token := m.state.Begin(kind)
	logger.WithRequest(kind.String(), token).Debug("request started", "inFlight", m.state.InFlight())
	return token, m.header.SetLoading(label)
}

// finishRequest records a response and reports whether it is current. The
// loading indicator is cleared once nothing is in flight, whatever the
// outcome.
func (m *Model) finishRequest(kind RequestKind, token uint64) bool {
	current := m.state.Finish(kind, token)
	if !m.state.Loading() {
		m.header.SetLoading("")
	}
	if !current {
		logger.WithRequest(kind.String(), token).Info("stale response discarded", "latest", m.state.Latest(kind))
	}
	return current
}

func (m *Model) signIn(email, password string) tea.Cmd {
	token, loading := m.beginRequest(RequestAuth, loadingSignIn)
	return tea.Batch(loading, signInCmd(m.ctx, m.client, token, email, password))
}

func (m *Model) signUp(username, email, password string) tea.Cmd {
	token, loading := m.beginRequest(RequestAuth, loadingSignUp)
	return tea.Batch(loading, signUpCmd(m.ctx, m.client, token, username, email, password))
}

func (m *Model) resetPassword(email string) tea.Cmd {
	token, loading := m.beginRequest(RequestAuth, loadingReset)
	return tea.Batch(loading, resetPasswordCmd(m.ctx, m.client, token, email))
}

// logout clears the session locally. There is no server call.
func (m *Model) logout() tea.Cmd {
	if err := session.Clear(m.storage); err != nil {
		logger.Error("App: failed to clear session: %v", err)
	}
	m.state.SignOut()
	m.showSignIn("")
	m.setMode(ModeEdit)
	return m.ShowToastInfo("Logged out successfully")
}

func (m *Model) analyze() tea.Cmd {
	code := m.editor.Value()
	if strings.TrimSpace(code) == "" {
		return m.ShowToastError("Please enter some code to analyze")
	}
	token, loading := m.beginRequest(RequestAnalyze, loadingAnalyze)
	client := m.client.WithToken(m.state.Token())
	return tea.Batch(loading, analyzeCmd(m.ctx, client, token, code, m.language))
}

func (m *Model) refine(action api.Action) tea.Cmd {
	code := m.editor.Value()
	if strings.TrimSpace(code) == "" {
		return m.ShowToastError("Please enter some code to refine")
	}
	token, loading := m.beginRequest(RequestRefine, loadingRefine)
	client := m.client.WithToken(m.state.Token())
	return tea.Batch(loading, refineCmd(m.ctx, client, token, code, m.language, action))
}

// applyRefinement copies the refined code into the editor
func (m *Model) applyRefinement() tea.Cmd {
	res := m.state.Refinement
	if res == nil {
		return nil
	}
	clampCmd := m.replaceText(res.RefinedCode)
	m.results.HideComparison()
	return tea.Batch(clampCmd, m.ShowToastSuccess("Changes applied to editor!"))
}

func (m *Model) exportRefinement(format string) tea.Cmd {
	report, err := export.NewReport(m.state.Refinement, m.now())
	if err != nil {
		return m.ShowToastError("No refined code to download")
	}
	var open func(string) error
	if format == exportDocument {
		open = m.openDocument
	}
	return exportCmd(m.config.GetExportDir(), format, report, open)
}

func (m *Model) share() tea.Cmd {
	res := m.state.Refinement
	if res == nil || res.RefinedCode == "" {
		return m.ShowToastError("No refined code to share")
	}
	if m.store == nil {
		return m.ShowToastError("Sharing is unavailable")
	}
	return m.shareCmd(*res)
}

// insertText inserts text at the editor cursor
func (m *Model) insertText(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	m.editor.InsertString(text)
	return m.enforceLineLimit()
}

// replaceText replaces the whole editor content with the sanitized text,
// keeping at most editor.MaxLines lines
func (m *Model) replaceText(text string) tea.Cmd {
	text, truncated := editor.Clamp(editor.Sanitize(text))
	m.editor.SetValue(text)
	if cmd := m.enforceLineLimit(); cmd != nil {
		return cmd
	}
	if truncated {
		return m.ShowToastInfo(lineLimitText)
	}
	return nil
}

// enforceLineLimit truncates the editor to editor.MaxLines. It returns the
// notification command when lines were dropped.
func (m *Model) enforceLineLimit() tea.Cmd {
	text, truncated := editor.Clamp(m.editor.Value())
	if !truncated {
		return nil
	}
	m.editor.SetValue(text)
	return m.ShowToastInfo(lineLimitText)
}

// showModal displays state and refreshes the footer for it
func (m *Model) showModal(state modals.ModalState) {
	m.modal.Show(state)
	m.refreshChrome()
}

// hideModal closes the current modal
func (m *Model) hideModal() {
	m.modal.Hide()
	m.refreshChrome()
}

func (m *Model) showSignIn(email string) {
	m.showModal(modals.NewSignInState(email))
}

func (m *Model) showSignUp() {
	m.showModal(modals.NewSignUpState())
}

func (m *Model) showResetPassword() {
	m.showModal(modals.NewResetPasswordState())
}
