package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ConfirmClearState - State for the clear conversation confirmation
// =============================================================================

type ConfirmClearState struct {
	Messages int
}

func (*ConfirmClearState) modalState() {}

func (s *ConfirmClearState) Title() string { return "Clear conversation?" }

func (s *ConfirmClearState) Help() string {
	return "Enter: clear  Esc: keep"
}

func (s *ConfirmClearState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	noun := "messages"
	if s.Messages == 1 {
		noun = "message"
	}
	body := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(ModalInputWidth).
		Render(fmt.Sprintf("This removes %d %s from the screen. The uploaded PDF stays on the backend.", s.Messages, noun))

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *ConfirmClearState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewConfirmClearState creates a confirmation for clearing n messages
func NewConfirmClearState(n int) *ConfirmClearState {
	return &ConfirmClearState{Messages: n}
}
