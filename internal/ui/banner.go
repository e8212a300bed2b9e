package ui

import "github.com/charmbracelet/x/ansi"

// Banner is the full-width error line drawn over the top of the screen
type Banner struct {
	width int
	text  string
}

// NewBanner creates an empty banner
func NewBanner() *Banner {
	return &Banner{}
}

// SetWidth sets the banner width
func (b *Banner) SetWidth(width int) {
	b.width = width
}

// SetText sets the banner text; "" hides the banner
func (b *Banner) SetText(text string) {
	b.text = text
}

// Visible reports whether there is anything to show
func (b *Banner) Visible() bool {
	return b.text != ""
}

// View renders the banner, or "" when hidden
func (b *Banner) View() string {
	if b.text == "" {
		return ""
	}
	text := b.text
	if b.width > 2 {
		text = ansi.Truncate(text, b.width-2, "…")
	}
	return BannerStyle.Width(b.width).Render(text)
}
