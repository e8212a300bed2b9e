package modals

import (
	"path/filepath"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// FilePickerState - State for choosing a PDF to upload
// =============================================================================

// PDFExtensions are the file types the picker offers as selectable
var PDFExtensions = []string{".pdf", ".PDF"}

// FilePickedMsg reports the file chosen in the picker. Allowed is false when
// the user chose a file the picker greys out.
type FilePickedMsg struct {
	Path    string
	Allowed bool
}

type FilePickerState struct {
	picker filepicker.Model
}

func (*FilePickerState) modalState() {}

func (s *FilePickerState) PreferredWidth() int { return ModalWidthWide }

func (s *FilePickerState) Title() string { return "Upload PDF" }

func (s *FilePickerState) Help() string {
	return "up/down: navigate  l/right: open folder  h/left: back  Enter: upload  Esc: cancel"
}

func (s *FilePickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	dir := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginBottom(1).
		Render(s.picker.CurrentDirectory)
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, dir, s.picker.View(), help)
}

// Init reads the starting directory
func (s *FilePickerState) Init() tea.Cmd {
	return s.picker.Init()
}

func (s *FilePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)

	if ok, path := s.picker.DidSelectFile(msg); ok {
		return s, pickedCmd(path, true)
	}
	if ok, path := s.picker.DidSelectDisabledFile(msg); ok {
		return s, pickedCmd(path, false)
	}
	return s, cmd
}

func pickedCmd(path string, allowed bool) tea.Cmd {
	return func() tea.Msg {
		return FilePickedMsg{Path: path, Allowed: allowed}
	}
}

// Directory returns the directory currently listed
func (s *FilePickerState) Directory() string {
	return s.picker.CurrentDirectory
}

// NewFilePickerState creates a picker listing dir
func NewFilePickerState(dir string) *FilePickerState {
	fp := filepicker.New()
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fp.CurrentDirectory = dir
	fp.AllowedTypes = PDFExtensions
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.SetHeight(PickerHeight)
	// Esc closes the modal instead of walking up a directory
	fp.KeyMap.Back.SetKeys("h", "backspace", "left")

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(ColorSecondary)
	fp.Styles.File = lipgloss.NewStyle().Foreground(ColorText)
	fp.Styles.DisabledFile = lipgloss.NewStyle().Foreground(ColorTextMuted)
	fp.Styles.EmptyDirectory = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		PaddingLeft(2).
		SetString("No files here.")

	return &FilePickerState{picker: fp}
}
