package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// applySettings validates the settings modal, applies its values and saves
// the config. Invalid values keep the modal open with the error shown.
func (m *Model) applySettings(s *modals.SettingsState) tea.Cmd {
	values, err := s.Values()
	if err != nil {
		m.modal.SetError(err.Error())
		return nil
	}

	clientChanged := values.BackendURL != m.config.GetBackendURL() || values.Timeout != m.config.GetTimeout()
	if err := m.config.SetBackendURL(values.BackendURL); err != nil {
		m.modal.SetError(err.Error())
		return nil
	}
	m.config.SetTimeout(values.Timeout)
	m.config.SetUserName(values.UserName)
	m.config.SetNotificationsEnabled(values.Notifications)
	m.modal.Hide()

	if clientChanged {
		m.rebuildBackend()
	}
	m.chat.SetUserName(m.config.GetUserName())
	m.chat.Refresh()

	log := logger.WithComponent("config")
	if err := m.config.Save(); err != nil {
		log.Error("failed to save settings", "error", err)
		return m.ShowFlashWarning("Settings applied but not saved")
	}
	log.Info("settings saved", "backend", values.BackendURL, "timeout", values.Timeout)
	return m.ShowFlashSuccess("Settings saved")
}
