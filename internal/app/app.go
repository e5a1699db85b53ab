package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/config"
	"github.com/coderefine/coderefine/internal/editor"
	"github.com/coderefine/coderefine/internal/export"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/notification"
	"github.com/coderefine/coderefine/internal/session"
	"github.com/coderefine/coderefine/internal/snippets"
	"github.com/coderefine/coderefine/internal/ui"
)

// Mode is the input mode of the main view
type Mode int

const (
	// ModeEdit sends keystrokes to the editor
	ModeEdit Mode = iota
	// ModeCommand interprets single keys as commands
	ModeCommand
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "Edit"
	case ModeCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

// SnippetStore is the part of the snippet store the TUI uses
type SnippetStore interface {
	Create(ctx context.Context, code, language, action string) (snippets.Snippet, error)
	Resolve(ctx context.Context, link string) (snippets.Snippet, error)
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	client  *api.Client
	storage session.Storage
	store   SnippetStore

	header  *ui.Header
	footer  *ui.Footer
	editor  *ui.Editor
	results *ui.Results
	toasts  *ui.Toasts
	modal   *ui.Modal

	state    *State
	mode     Mode
	language string

	width  int
	height int

	ctx    context.Context
	cancel context.CancelFunc

	// Startup work requested by flags, run from Init
	initialFile string
	sharedLink  string

	now          func() time.Time
	openDocument func(path string) error
	notify       func(action api.Action, language string) error
}

// Option configures a Model
type Option func(*Model)

// WithClient sets the API client. Defaults to one built from the config.
func WithClient(c *api.Client) Option {
	return func(m *Model) { m.client = c }
}

// WithStorage sets the session storage. Defaults to the file storage under
// the state directory.
func WithStorage(s session.Storage) Option {
	return func(m *Model) { m.storage = s }
}

// WithSnippets sets the snippet store used by share and --shared.
func WithSnippets(s SnippetStore) Option {
	return func(m *Model) { m.store = s }
}

// WithInitialFile loads path into the editor on start
func WithInitialFile(path string) Option {
	return func(m *Model) { m.initialFile = path }
}

// WithSharedLink opens a shared snippet on start
func WithSharedLink(link string) Option {
	return func(m *Model) { m.sharedLink = link }
}

// WithLanguage overrides the configured default language for this run
func WithLanguage(lang string) Option {
	return func(m *Model) {
		if editor.IsLanguage(lang) {
			m.language = lang
		}
	}
}

// WithClock replaces time.Now, used to name export files
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithDocumentOpener replaces the system opener used for the print document
func WithDocumentOpener(open func(path string) error) Option {
	return func(m *Model) { m.openDocument = open }
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		config:       cfg,
		version:      version,
		header:       ui.NewHeader(),
		footer:       ui.NewFooter(),
		editor:       ui.NewEditor(),
		results:      ui.NewResults(),
		toasts:       ui.NewToasts(),
		modal:        ui.NewModal(),
		state:        NewState(),
		mode:         ModeEdit,
		language:     cfg.GetDefaultLanguage(),
		ctx:          ctx,
		cancel:       cancel,
		now:          time.Now,
		openDocument: export.Open,
		notify:       notification.RefinementCompleted,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.client == nil {
		m.client = api.NewClient(cfg.GetAPIBaseURL(), cfg.GetRequestTimeout())
	}
	if m.storage == nil {
		if fs, err := session.DefaultStorage(); err == nil {
			m.storage = fs
		} else {
			logger.Warn("App: session storage unavailable, using memory: %v", err)
			m.storage = session.NewMemoryStorage()
		}
	}

	if sess, ok, err := session.Load(m.storage); err != nil {
		logger.Warn("App: failed to load session: %v", err)
	} else if ok {
		m.state.SignIn(sess)
	}

	if !editor.IsLanguage(m.language) {
		m.language = editor.DefaultLanguage
	}
	m.setLanguage(m.language)
	if !m.state.SignedIn() {
		m.showSignIn("")
	}
	m.setMode(ModeEdit)

	return m
}

// Init starts the startup work requested by flags
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.initialFile != "" {
		cmds = append(cmds, loadFileCmd(m.initialFile))
	}
	if m.sharedLink != "" {
		if m.state.SignedIn() {
			cmds = append(cmds, m.loadSharedCmd(m.sharedLink))
		} else {
			logger.Info("App: deferring shared link %q until sign-in", m.sharedLink)
		}
	}
	return tea.Batch(cmds...)
}

// Close cancels the root context, aborting requests still in flight
func (m *Model) Close() {
	m.cancel()
}

// State exposes the state store, for the CLI and tests
func (m *Model) State() *State {
	return m.state
}

// Mode returns the current input mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Language returns the selected language
func (m *Model) Language() string {
	return m.language
}

// EditorText returns the editor contents
func (m *Model) EditorText() string {
	return m.editor.Value()
}

// setMode switches input mode and moves editor focus with it
func (m *Model) setMode(mode Mode) {
	m.mode = mode
	m.editor.SetFocused(mode == ModeEdit && m.state.SignedIn())
	m.results.SetFocused(mode == ModeCommand)
	m.refreshChrome()
}

// setLanguage changes the language used by the next request
func (m *Model) setLanguage(lang string) {
	m.language = lang
	m.editor.SetLanguage(lang)
	m.header.SetLanguage(lang)
}

// refreshChrome syncs header and footer with the current state
func (m *Model) refreshChrome() {
	email := ""
	if m.state.Session != nil {
		email = m.state.Session.User.Email
	}
	m.header.SetUser(email)

	mode := ui.FooterCommand
	switch {
	case !m.state.SignedIn():
		mode = ui.FooterAuth
	case m.modal.IsVisible():
		mode = ui.FooterModal
	case m.mode == ModeEdit:
		mode = ui.FooterEdit
	}
	m.footer.SetContext(mode, m.state.Refinement != nil)
}

// updateSizes recomputes the layout from the terminal size
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.editor.SetSize(ctx.EditorWidth, ctx.ContentHeight)
	m.results.SetSize(ctx.ResultsWidth, ctx.ContentHeight)
}
