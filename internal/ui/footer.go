package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/keys"
)

// Footer is the bottom bar: key hints, or a flash message while one is live
type Footer struct {
	width        int
	help         help.Model
	flashMessage *FlashMessage

	waiting   bool // a chat reply is pending
	modalOpen bool
}

// Key hints shown in the footer
var (
	bindSend     = key.NewBinding(key.WithKeys(keys.Enter), key.WithHelp(keys.Enter, "send"))
	bindCancel   = key.NewBinding(key.WithKeys(keys.Escape), key.WithHelp(keys.Escape, "cancel"))
	bindUpload   = key.NewBinding(key.WithKeys(keys.CtrlO), key.WithHelp(keys.CtrlO, "upload pdf"))
	bindCopy     = key.NewBinding(key.WithKeys(keys.CtrlY), key.WithHelp(keys.CtrlY, "copy answer"))
	bindSettings = key.NewBinding(key.WithKeys(keys.CtrlS), key.WithHelp(keys.CtrlS, "settings"))
	bindScroll   = key.NewBinding(key.WithKeys(keys.PgUp, keys.PgDown), key.WithHelp("pgup/dn", "scroll"))
	bindQuit     = key.NewBinding(key.WithKeys(keys.CtrlC), key.WithHelp(keys.CtrlC, "quit"))
	bindConfirm  = key.NewBinding(key.WithKeys(keys.Enter), key.WithHelp(keys.Enter, "confirm"))
	bindClose    = key.NewBinding(key.WithKeys(keys.Escape), key.WithHelp(keys.Escape, "close"))
)

// NewFooter creates a new footer
func NewFooter() *Footer {
	h := help.New()
	h.ShortSeparator = "  |  "
	h.Styles.ShortKey = FooterKeyStyle
	h.Styles.ShortDesc = FooterDescStyle
	h.Styles.ShortSeparator = FooterSepStyle
	h.Styles.Ellipsis = FooterSepStyle
	return &Footer{help: h}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(width - 2)
}

// SetContext updates which hints apply
func (f *Footer) SetContext(waiting, modalOpen bool) {
	f.waiting = waiting
	f.modalOpen = modalOpen
}

// Bindings returns the hints for the current context
func (f *Footer) Bindings() []key.Binding {
	switch {
	case f.modalOpen:
		return []key.Binding{bindConfirm, bindClose}
	case f.waiting:
		return []key.Binding{bindCancel, bindUpload, bindScroll, bindQuit}
	default:
		return []key.Binding{bindSend, bindUpload, bindCopy, bindSettings, bindScroll, bindQuit}
	}
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops the flash once it has expired
func (f *Footer) ClearIfExpired() {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}
	return FooterStyle.Width(f.width).Render(f.help.ShortHelpView(f.Bindings()))
}

func (f *Footer) renderFlash() string {
	c := ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		c = ColorError
	case FlashWarning:
		c = ColorWarning
	case FlashSuccess:
		c = ColorSuccess
	}
	style := lipgloss.NewStyle().Foreground(c).Bold(true)
	return style.Render(f.flashMessage.Type.Icon() + " " + f.flashMessage.Text)
}
