package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/keys"
)

// newForm builds a huh form styled for modals and initializes it so the
// first render is complete.
func newForm(width int, groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithTheme(formTheme()).
		WithShowHelp(false).
		WithWidth(width).
		WithLayout(huh.LayoutStack)
	form.Init()
	return form
}

// updateForm forwards msg to form. Enter and Escape belong to the app,
// which submits or closes the modal.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && (k.String() == keys.Enter || k.String() == keys.Escape) {
		return form, nil
	}

	next, cmd := form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		return f, cmd
	}
	return form, cmd
}

// formTheme follows the modal palette: the focused field gets a bar in the
// primary color, blurred fields are indented to line up with it.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		text := lipgloss.NewStyle().Foreground(ColorText)
		muted := lipgloss.NewStyle().Foreground(ColorTextMuted)
		accent := lipgloss.NewStyle().Foreground(ColorPrimary)

		f := &t.Focused
		f.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		f.Card = f.Base
		f.Title = text.Bold(true)
		f.Description = muted
		f.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" !")
		f.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)
		f.FocusedButton = lipgloss.NewStyle().Padding(0, 1).MarginRight(1).
			Foreground(ColorTextInverse).Background(ColorPrimary)
		f.BlurredButton = muted.Padding(0, 1).MarginRight(1)
		f.TextInput.Cursor = accent
		f.TextInput.Prompt = accent
		f.TextInput.Placeholder = muted
		f.TextInput.Text = text

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = text
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		return t
	})
}
