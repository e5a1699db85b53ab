package app

import (
	tea "charm.land/bubbletea/v2"

	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/ui"
)

// networkErrorText is shown for transport and decode failures
const networkErrorText = "Network error. Please try again."

// ShowToast pushes a toast and returns the command that expires it
func (m *Model) ShowToast(text string, severity ui.ToastSeverity) tea.Cmd {
	logger.Debug("App: toast %s: %s", severity, text)
	return m.toasts.Push(text, severity)
}

// ShowToastError displays an error toast
func (m *Model) ShowToastError(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastError)
}

// ShowToastInfo displays an info toast
func (m *Model) ShowToastInfo(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastInfo)
}

// ShowToastSuccess displays a success toast
func (m *Model) ShowToastSuccess(text string) tea.Cmd {
	return m.ShowToast(text, ui.ToastSuccess)
}

// errorText turns a request error into the text shown to the user. Server
// messages are shown verbatim; anything that never reached the service is a
// network error.
func errorText(err error) string {
	if msg, ok := perrors.RemoteMessage(err); ok {
		return msg
	}
	if perrors.Is(err, perrors.KindNetwork) {
		return networkErrorText
	}
	return err.Error()
}
