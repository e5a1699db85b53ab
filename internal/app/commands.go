package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/clipboard"
	"github.com/coderefine/coderefine/internal/editor"
	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/export"
	"github.com/coderefine/coderefine/internal/logger"
)

// The commands below run outside the update loop. They only read the values
// captured when they were built and report back through a message.

func signInCmd(ctx context.Context, client *api.Client, token uint64, email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := client.SignIn(ctx, email, password)
		return AuthResultMsg{Token: token, Action: AuthSignIn, Email: email, Session: sess, Err: err}
	}
}

func signUpCmd(ctx context.Context, client *api.Client, token uint64, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		err := client.SignUp(ctx, username, email, password)
		return AuthResultMsg{Token: token, Action: AuthSignUp, Email: email, Err: err}
	}
}

func resetPasswordCmd(ctx context.Context, client *api.Client, token uint64, email string) tea.Cmd {
	return func() tea.Msg {
		err := client.ResetPassword(ctx, email)
		return AuthResultMsg{Token: token, Action: AuthReset, Email: email, Err: err}
	}
}

func analyzeCmd(ctx context.Context, client *api.Client, token uint64, code, language string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Analyze(ctx, code, language)
		return AnalyzeResultMsg{Token: token, Result: res, Err: err}
	}
}

func refineCmd(ctx context.Context, client *api.Client, token uint64, code, language string, action api.Action) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Refine(ctx, code, language, action)
		return RefineResultMsg{Token: token, Result: res, Err: err}
	}
}

// loadFileCmd reads path for the editor. Line endings are normalized and the
// language is detected from the extension.
func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return FileLoadedMsg{Path: path, Err: perrors.E(perrors.Op("app.loadFile"), perrors.KindIO, err)}
		}
		lang, _ := editor.DetectLanguage(filepath.Ext(path))
		return FileLoadedMsg{Path: path, Text: editor.Normalize(string(data)), Language: lang}
	}
}

func readClipboardCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadText()
		return ClipboardReadMsg{Text: text, Err: err}
	}
}

func writeClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteText(text)
		return ClipboardWrittenMsg{Text: text, Err: err}
	}
}

func (m *Model) shareCmd(res api.RefineResult) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		snip, err := store.Create(ctx, res.RefinedCode, res.Language, string(res.Action))
		return ShareCreatedMsg{Snippet: snip, Err: err}
	}
}

func (m *Model) loadSharedCmd(link string) tea.Cmd {
	store, ctx := m.store, m.ctx
	if store == nil {
		logger.Warn("App: no snippet store, cannot open %q", link)
		return nil
	}
	return func() tea.Msg {
		snip, err := store.Resolve(ctx, link)
		return SharedLoadedMsg{Link: link, Snippet: snip, Err: err}
	}
}

// exportCmd writes the report in format to dir. A document export is then
// handed to open so the print dialog appears.
func exportCmd(dir, format string, report export.Report, open func(string) error) tea.Cmd {
	return func() tea.Msg {
		exp, err := export.NewExporter(format)
		if err != nil {
			return ExportDoneMsg{Format: format, Err: err}
		}
		path, err := export.WriteFile(dir, exp, report)
		if err != nil {
			return ExportDoneMsg{Format: format, Err: err}
		}
		if format == exportDocument && open != nil {
			if err := open(path); err != nil {
				return ExportDoneMsg{Format: format, Path: path, Err: fmt.Errorf("failed to open %s: %w", path, err)}
			}
		}
		return ExportDoneMsg{Format: format, Path: path}
	}
}

// Export formats offered by the TUI
const (
	exportText     = "txt"
	exportDocument = "html"
)

// normalizePaste converts pasted text to the editor's line endings. Some
// terminals deliver pasted newlines as a bare CR.
func normalizePaste(text string) string {
	return editor.Normalize(text)
}
