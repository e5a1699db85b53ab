// Package errors provides structured error types for the coderefine client.
// These errors record which operation failed and what kind of failure it was,
// so the UI can decide between a verbatim server message and a generic one.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindRemote
	KindNetwork
	KindNotFound
	KindInvalid
	KindIO
	KindConfig
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation failed"
	case KindRemote:
		return "remote error"
	case KindNetwork:
		return "network error"
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindUnauthenticated:
		return "not signed in"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for coderefine.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// RemoteMessage returns the message the server sent for a KindRemote error,
// without the operation prefix. ok is false for any other error.
func RemoteMessage(err error) (msg string, ok bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindRemote {
		return "", false
	}
	return e.Err.Error(), true
}

// Validation errors
func EmptyCode(op Op) error {
	return E(op, KindValidation, "no code provided")
}

func UnknownAction(action string) error {
	return E(Op("api.ParseAction"), KindValidation, fmt.Sprintf("unknown action %q (want bugs, performance or refactor)", action))
}

func UnknownLanguage(lang string) error {
	return E(Op("api.ParseLanguage"), KindValidation, fmt.Sprintf("unsupported language %q", lang))
}

// Remote and transport errors
func RemoteFailed(op Op, message string) error {
	return &Error{Op: op, Kind: KindRemote, Err: errors.New(message)}
}

func TransportFailed(op Op, err error) error {
	return E(op, KindNetwork, err)
}

// Session errors
func NotSignedIn() error {
	return E(Op("session.Require"), KindUnauthenticated, "not signed in; run 'coderefine login' first")
}

// Snippet errors
func SnippetNotFound(id string) error {
	return E(Op("snippets.Get"), KindNotFound, fmt.Sprintf("snippet %s not found", id))
}

func InvalidShareLink(link string) error {
	return E(Op("snippets.ParseLink"), KindInvalid, fmt.Sprintf("%q is not a snippet link or id", link))
}

// Export errors
func NothingToExport(op Op) error {
	return E(op, KindValidation, "no refined code")
}

func ExportFailed(path string, err error) error {
	return E(Op("export.Write"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
