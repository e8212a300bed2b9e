package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// ModalState is the interface implemented by every modal
type ModalState = modals.ModalState

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state. Modals that read something
// when opened return the command that does it.
func (m *Modal) Show(state ModalState) tea.Cmd {
	m.State = state
	m.error = ""
	if s, ok := state.(modals.ModalWithInit); ok {
		return s.Init()
	}
	return nil
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on a screen of the given size
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	width := ModalWidth
	if p, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		width = p.PreferredWidth()
	}
	// Leave room for the border and a margin on narrow screens
	if width > screenWidth-8 {
		width = max(screenWidth-8, 20)
	}

	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
