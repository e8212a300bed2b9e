package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/keys"
)

// whatsNewVisibleLines bounds the release notes shown at once
const whatsNewVisibleLines = 12

// Release is one version's notes as shown in the What's New modal
type Release struct {
	Version string
	Date    string
	Changes []string
}

// =============================================================================
// WhatsNewState - State for the release notes shown after an upgrade
// =============================================================================

type WhatsNewState struct {
	Releases     []Release
	ScrollOffset int
	totalLines   int
}

func (*WhatsNewState) modalState() {}

func (s *WhatsNewState) Title() string { return "What's New" }

func (s *WhatsNewState) Help() string {
	if s.totalLines > whatsNewVisibleLines {
		return "up/down scroll  Enter/Esc: dismiss"
	}
	return "Press Enter or Esc to dismiss"
}

// lines lays out every release as visual lines, wrapping long changes
func (s *WhatsNewState) lines() []string {
	bullet := lipgloss.NewStyle().Foreground(ColorSecondary).Render("  - ")
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	change := lipgloss.NewStyle().Foreground(ColorText).Width(ModalInputWidth - 4)

	var out []string
	for i, r := range s.Releases {
		if i > 0 {
			out = append(out, "")
		}
		v := "v" + r.Version
		if r.Date != "" {
			v += " (" + r.Date + ")"
		}
		out = append(out, header.Render(v))

		for _, c := range r.Changes {
			for j, line := range strings.Split(change.Render(c), "\n") {
				if j == 0 {
					out = append(out, bullet+line)
				} else {
					out = append(out, "    "+line)
				}
			}
		}
	}
	return out
}

func (s *WhatsNewState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	all := s.lines()
	s.totalLines = len(all)
	s.ScrollOffset = min(s.ScrollOffset, s.maxOffset())
	end := min(s.ScrollOffset+whatsNewVisibleLines, len(all))
	content := lipgloss.JoinVertical(lipgloss.Left, all[s.ScrollOffset:end]...)

	if s.totalLines > whatsNewVisibleLines {
		content += "\n" + lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("(scroll for more)")
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *WhatsNewState) maxOffset() int {
	return max(0, s.totalLines-whatsNewVisibleLines)
}

func (s *WhatsNewState) scroll(delta int) {
	s.ScrollOffset = max(0, min(s.ScrollOffset+delta, s.maxOffset()))
}

func (s *WhatsNewState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			s.scroll(-1)
		case keys.Down, "j":
			s.scroll(1)
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			s.scroll(-1)
		case tea.MouseWheelDown:
			s.scroll(1)
		}
	}
	return s, nil
}

// NewWhatsNewState creates the release notes modal
func NewWhatsNewState(releases []Release) *WhatsNewState {
	s := &WhatsNewState{Releases: releases}
	s.totalLines = len(s.lines())
	return s
}
