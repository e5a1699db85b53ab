package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/keys"
	"github.com/coderefine/coderefine/internal/logger"
	"github.com/coderefine/coderefine/internal/ui/modals"
)

// Shortcut categories for the help modal
const (
	CategoryCode    = "Code"
	CategoryResult  = "Refined Code"
	CategoryGeneral = "General"
	CategoryEditing = "Editing"
)

// categoryOrder is the order sections appear in the help modal
var categoryOrder = []string{CategoryCode, CategoryResult, CategoryGeneral, CategoryEditing}

// Shortcut is one command-mode key
type Shortcut struct {
	Key         string
	DisplayKey  string // shown in help instead of Key, when set
	Description string
	Category    string
	Handler     func(m *Model) (tea.Model, tea.Cmd)
}

// ShortcutRegistry holds every command-mode shortcut. It is filled in init
// because shortcutHelp reads it.
var ShortcutRegistry []Shortcut

func init() {
	ShortcutRegistry = []Shortcut{
		{Key: "a", Description: "Analyze code", Category: CategoryCode, Handler: shortcutAnalyze},
		{Key: "b", Description: "Refine: fix bugs", Category: CategoryCode, Handler: refineShortcut(api.ActionBugs)},
		{Key: "p", Description: "Refine: optimize performance", Category: CategoryCode, Handler: refineShortcut(api.ActionPerformance)},
		{Key: "r", Description: "Refine: refactor", Category: CategoryCode, Handler: refineShortcut(api.ActionRefactor)},
		{Key: "l", Description: "Change language", Category: CategoryCode, Handler: shortcutLanguage},
		{Key: "o", Description: "Open file", Category: CategoryCode, Handler: shortcutOpenFile},

		{Key: "y", Description: "Apply changes to editor", Category: CategoryResult, Handler: shortcutApply},
		{Key: "t", Description: "Download as TXT", Category: CategoryResult, Handler: shortcutExportText},
		{Key: "d", Description: "Print as PDF", Category: CategoryResult, Handler: shortcutExportDocument},
		{Key: "s", Description: "Share refined code", Category: CategoryResult, Handler: shortcutShare},

		{Key: "i", Description: "Edit code", Category: CategoryGeneral, Handler: shortcutEdit},
		{Key: keys.Enter, Description: "Edit code", Category: CategoryGeneral, Handler: shortcutEdit},
		{Key: "x", Description: "Log out", Category: CategoryGeneral, Handler: shortcutLogout},
		{Key: "?", Description: "Show help", Category: CategoryGeneral, Handler: shortcutHelp},
		{Key: "q", Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
	}
}

// DisplayOnlyShortcuts are listed in help but handled by the editor
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: keys.Escape, Description: "Leave the editor", Category: CategoryEditing},
	{DisplayKey: keys.Tab, Description: "Insert 4 spaces", Category: CategoryEditing},
	{DisplayKey: keys.CtrlV, Description: "Paste from clipboard", Category: CategoryEditing},
	{DisplayKey: keys.CtrlO, Description: "Open file", Category: CategoryEditing},
	{DisplayKey: "pgup/pgdown", Description: "Scroll results", Category: CategoryEditing},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key == key {
			logger.ComponentLogger("Shortcut").Debug("executing", "key", key, "description", s.Description)
			result, cmd := s.Handler(m)
			return result, cmd, true
		}
	}
	return m, nil, false
}

// helpSections groups the registry by category for the help modal. Keys
// that share a description are listed once.
func helpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	byCategory := make(map[string][]modals.HelpShortcut)
	seen := make(map[string]bool)
	for _, s := range append(append([]Shortcut(nil), registry...), displayOnly...) {
		if seen[s.Category+s.Description] {
			continue
		}
		seen[s.Category+s.Description] = true
		key := s.Key
		if s.DisplayKey != "" {
			key = s.DisplayKey
		}
		byCategory[s.Category] = append(byCategory[s.Category], modals.HelpShortcut{Key: key, Desc: s.Description})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if len(byCategory[cat]) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: byCategory[cat]})
		}
	}
	return sections
}

func shortcutAnalyze(m *Model) (tea.Model, tea.Cmd) {
	return m, m.analyze()
}

func refineShortcut(action api.Action) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		return m, m.refine(action)
	}
}

func shortcutLanguage(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(modals.NewLanguagePickerState(m.language))
	return m, nil
}

func shortcutOpenFile(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(modals.NewOpenFileState())
	return m, nil
}

func shortcutApply(m *Model) (tea.Model, tea.Cmd) {
	return m, m.applyRefinement()
}

func shortcutExportText(m *Model) (tea.Model, tea.Cmd) {
	return m, m.exportRefinement(exportText)
}

func shortcutExportDocument(m *Model) (tea.Model, tea.Cmd) {
	return m, m.exportRefinement(exportDocument)
}

func shortcutShare(m *Model) (tea.Model, tea.Cmd) {
	return m, m.share()
}

func shortcutEdit(m *Model) (tea.Model, tea.Cmd) {
	m.setMode(ModeEdit)
	return m, nil
}

func shortcutLogout(m *Model) (tea.Model, tea.Cmd) {
	return m, m.logout()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(modals.NewHelpState(helpSections(ShortcutRegistry, DisplayOnlyShortcuts)))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
