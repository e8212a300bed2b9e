package modals

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/config"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// Settings are the values edited by the settings modal
type Settings struct {
	BackendURL    string
	Timeout       time.Duration
	UserName      string
	Notifications bool
}

type SettingsState struct {
	backendURL    string
	timeout       string
	userName      string
	notifications bool

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// validateTimeout accepts whole seconds or a Go duration; blank means none
func validateTimeout(v string) error {
	_, err := config.ParseTimeout(v)
	return err
}

// Values validates the form and returns the edited settings
func (s *SettingsState) Values() (Settings, error) {
	url := strings.TrimSpace(s.backendURL)
	if err := config.ValidateBackendURL(url); err != nil {
		return Settings{}, err
	}
	timeout, err := config.ParseTimeout(s.timeout)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		BackendURL:    url,
		Timeout:       timeout,
		UserName:      strings.TrimSpace(s.userName),
		Notifications: s.notifications,
	}, nil
}

// NewSettingsState creates a settings modal seeded with current values
func NewSettingsState(current Settings) *SettingsState {
	s := &SettingsState{
		backendURL:    current.BackendURL,
		userName:      current.UserName,
		notifications: current.Notifications,
	}
	if current.Timeout > 0 {
		s.timeout = strconv.Itoa(int(current.Timeout.Seconds()))
	}

	s.form = newForm(ModalWidthWide-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Description("Where /ask and /upload are served").
				Placeholder(config.DefaultBackendURL).
				CharLimit(ModalInputCharLimit).
				Validate(config.ValidateBackendURL).
				Value(&s.backendURL),
			huh.NewInput().
				Title("Request timeout").
				Description("Seconds; leave blank to wait indefinitely").
				Placeholder("none").
				CharLimit(16).
				Validate(validateTimeout).
				Value(&s.timeout),
			huh.NewInput().
				Title("Your name").
				Description("Shown next to your messages").
				Placeholder(config.DefaultUserName).
				CharLimit(ModalInputCharLimit).
				Value(&s.userName),
			huh.NewConfirm().
				Title("Desktop notifications").
				Description("Notify when an answer arrives while the terminal is unfocused").
				Affirmative("On").
				Negative("Off").
				Value(&s.notifications),
		),
	)
	return s
}
