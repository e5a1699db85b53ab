package app

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/editor"
	"github.com/coderefine/coderefine/internal/keys"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/ui"
	"github.com/coderefine/coderefine/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.PasteMsg:
		return m.handlePaste(msg)

	case tea.MouseWheelMsg:
		if m.state.SignedIn() && !m.modal.IsVisible() {
			return m, m.results.Update(msg)
		}
		return m, nil

	case spinner.TickMsg:
		return m, m.header.UpdateSpinner(msg)

	case ui.ToastExitMsg, ui.ToastRemoveMsg:
		return m, m.toasts.Update(msg)

	case AuthResultMsg:
		return m.handleAuthResultMsg(msg)

	case AnalyzeResultMsg:
		return m.handleAnalyzeResultMsg(msg)

	case RefineResultMsg:
		return m.handleRefineResultMsg(msg)

	case FileLoadedMsg:
		return m.handleFileLoadedMsg(msg)

	case ClipboardReadMsg:
		return m.handleClipboardReadMsg(msg)

	case ClipboardWrittenMsg:
		return m.handleClipboardWrittenMsg(msg)

	case ShareCreatedMsg:
		return m.handleShareCreatedMsg(msg)

	case SharedLoadedMsg:
		return m.handleSharedLoadedMsg(msg)

	case ExportDoneMsg:
		return m.handleExportDoneMsg(msg)

	case modals.CopyShareLinkMsg:
		return m, writeClipboardCmd(msg.Link)

	case modals.HelpShortcutTriggeredMsg:
		logger.ComponentLogger("App").Debug("help triggered shortcut", "key", msg.Key)
		result, cmd, _ := m.ExecuteShortcut(msg.Key)
		return result, cmd
	}

	// Everything else (form internals, cursor blink) belongs to whatever has
	// the input focus
	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	if m.mode == ModeEdit && m.state.SignedIn() {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.ComponentLogger("App").Debug("key press", "key", key, "mode", m.mode, "modal", m.modal.IsVisible())

	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Signed out with the auth form dismissed: bring it back
	if !m.state.SignedIn() {
		m.showSignIn("")
		return m, nil
	}

	if m.mode == ModeEdit {
		return m.handleEditKey(msg)
	}
	return m.handleCommandKey(msg)
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.setMode(ModeCommand)
		return m, nil
	case keys.Tab:
		return m, m.insertText(editor.Tab)
	case keys.CtrlV:
		return m, readClipboardCmd()
	case keys.CtrlO:
		return shortcutOpenFile(m)
	case keys.PgUp, keys.PgDown:
		return m, m.results.Update(msg)
	}

	cmd := m.editor.Update(msg)
	return m, tea.Batch(cmd, m.enforceLineLimit())
}

func (m *Model) handleCommandKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case keys.Up, keys.Down, keys.PgUp, keys.PgDown:
		return m, m.results.Update(msg)
	case keys.Escape:
		return m, nil
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}
	return m, nil
}

// handlePaste inserts bracketed paste content into the editor or the
// focused form field
func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	logger.ComponentLogger("App").Debug("paste", "bytes", len(msg.Content))
	if m.modal.IsVisible() {
		return m.forwardToModal(msg)
	}
	if !m.state.SignedIn() || m.mode != ModeEdit {
		return m, nil
	}
	return m, m.insertText(normalizePaste(msg.Content))
}
