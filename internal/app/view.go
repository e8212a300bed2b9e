package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < ui.MinTerminalWidth || m.height < ui.MinTerminalHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Need at least %dx%d.",
			m.width, m.height, ui.MinTerminalWidth, ui.MinTerminalHeight)
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	parts := make([]string, 0, 4)
	if m.banner.Visible() {
		parts = append(parts, m.banner.View())
	}
	parts = append(parts, m.navbar.View(), m.chat.View(), m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chatHeight is what is left for the chat once the bars are placed
func (m *Model) chatHeight() int {
	h := m.height - ui.NavbarHeight - ui.FooterHeight
	if m.banner.Visible() {
		h -= ui.BannerHeight
	}
	return max(h, 0)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	m.navbar.SetWidth(m.width)
	m.banner.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.chat.SetSize(m.width, m.chatHeight())
}
