package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// CopyShareLinkMsg asks the app to put the link on the clipboard.
type CopyShareLinkMsg struct {
	Link string
}

// =============================================================================
// ShareState - shows the link of a freshly stored snippet
// =============================================================================

type ShareState struct {
	Link string
}

func (*ShareState) modalState() {}

func (s *ShareState) Title() string { return "Share Code" }

func (s *ShareState) Help() string {
	return "c: copy link  Esc: close"
}

func (s *ShareState) Render() string {
	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Anyone with this link can open the refined code:")
	link := ShareLinkStyle.MarginTop(1).Render(TruncateString(s.Link, ModalWidth-4))
	body := lipgloss.JoinVertical(lipgloss.Left, label, link)
	return renderModal(s.Title(), body, s.Help())
}

func (s *ShareState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == "c" {
			link := s.Link
			return s, func() tea.Msg { return CopyShareLinkMsg{Link: link} }
		}
	}
	return s, nil
}

func NewShareState(link string) *ShareState {
	return &ShareState{Link: link}
}
