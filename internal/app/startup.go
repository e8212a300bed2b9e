package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/changelog"
	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// StartupModalMsg is sent once after Init to show the release notes
type StartupModalMsg struct{}

func startupModalCmd() tea.Msg {
	return StartupModalMsg{}
}

// handleStartupModals shows What's New when this release differs from the
// last one the user saw. Dev builds never show it.
func (m *Model) handleStartupModals() (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() || !changelog.ReleaseVersion(m.version) {
		return m, nil
	}

	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen != "" && changelog.CompareVersions(m.version, lastSeen) == 0 {
		return m, nil
	}

	var notes []modals.Release
	for _, r := range changelog.Since(lastSeen, changelog.Parse(changelog.Content)) {
		if changelog.CompareVersions(r.Version, m.version) > 0 {
			continue
		}
		notes = append(notes, modals.Release{Version: r.Version, Date: r.Date, Changes: r.Changes})
	}

	if len(notes) == 0 {
		m.markVersionSeen()
		return m, nil
	}

	logger.WithComponent("app").Info("showing release notes",
		"from", lastSeen, "to", m.version, "releases", len(notes))
	return m, m.modal.Show(modals.NewWhatsNewState(notes))
}

// dismissWhatsNew hides the release notes and remembers they were seen
func (m *Model) dismissWhatsNew() tea.Cmd {
	m.modal.Hide()
	m.markVersionSeen()
	return nil
}

func (m *Model) markVersionSeen() {
	m.config.SetLastSeenVersion(m.version)
	if err := m.config.Save(); err != nil {
		logger.WithComponent("config").Warn("failed to save last-seen version", "error", err)
	}
}
