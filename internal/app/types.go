package app

import (
	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/snippets"
)

// AuthAction is the auth endpoint a request went to
type AuthAction int

const (
	AuthSignIn AuthAction = iota
	AuthSignUp
	AuthReset
)

func (a AuthAction) String() string {
	switch a {
	case AuthSignIn:
		return "signin"
	case AuthSignUp:
		return "signup"
	case AuthReset:
		return "reset"
	default:
		return "unknown"
	}
}

// AuthResultMsg is sent when a sign-in, sign-up or reset request completes.
// Email is the address the form was submitted with.
type AuthResultMsg struct {
	Token   uint64
	Action  AuthAction
	Email   string
	Session api.Session
	Err     error
}

// AnalyzeResultMsg is sent when an analyze request completes
type AnalyzeResultMsg struct {
	Token  uint64
	Result api.AnalysisResult
	Err    error
}

// RefineResultMsg is sent when a refine request completes
type RefineResultMsg struct {
	Token  uint64
	Result api.RefineResult
	Err    error
}

// FileLoadedMsg carries the contents of a file opened into the editor
type FileLoadedMsg struct {
	Path     string
	Text     string
	Language string // detected from the extension, empty when unknown
	Err      error
}

// ClipboardReadMsg carries the clipboard text for a paste
type ClipboardReadMsg struct {
	Text string
	Err  error
}

// ClipboardWrittenMsg reports the outcome of copying text to the clipboard
type ClipboardWrittenMsg struct {
	Text string
	Err  error
}

// ShareCreatedMsg is sent when the refined code was stored as a snippet
type ShareCreatedMsg struct {
	Snippet snippets.Snippet
	Err     error
}

// SharedLoadedMsg is sent when a shared link was resolved at startup
type SharedLoadedMsg struct {
	Link    string
	Snippet snippets.Snippet
	Err     error
}

// ExportDoneMsg is sent when an export file was written
type ExportDoneMsg struct {
	Format string
	Path   string
	Err    error
}
