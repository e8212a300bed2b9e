package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	navbarTitle    = "pdfchat"
	navbarSubtitle = "chat with your PDF"
	navbarFileIcon = "▤"
	navbarUpload   = "ctrl+o Upload PDF"
)

// Navbar is the top bar: title on the left, the uploaded file and the upload
// hint on the right
type Navbar struct {
	width     int
	label     string
	uploading bool
	frame     int
}

// NewNavbar creates a new navbar
func NewNavbar() *Navbar {
	return &Navbar{}
}

// SetWidth sets the navbar width
func (n *Navbar) SetWidth(width int) {
	n.width = width
}

// SetFile sets the file label and whether its upload is still running
func (n *Navbar) SetFile(label string, uploading bool) {
	n.label = label
	n.uploading = uploading
}

// Advance moves the uploading spinner one frame
func (n *Navbar) Advance() {
	n.frame++
}

// clipLabel bounds the label to MaxLabelWidth cells
func clipLabel(label string) string {
	return ansi.Truncate(label, MaxLabelWidth, "…")
}

// View renders the navbar
func (n *Navbar) View() string {
	left := renderGradient(" "+navbarTitle+" ") + " " + NavbarSubtitleStyle.Render(navbarSubtitle)
	leftText := " " + navbarTitle + "  " + navbarSubtitle

	var right, rightText string
	if n.label != "" {
		label := clipLabel(n.label)
		if n.uploading {
			frame := spinnerFrames[n.frame%len(spinnerFrames)]
			rightText = frame + " uploading " + label
			right = NavbarUploadingStyle.Render(rightText)
		} else {
			rightText = navbarFileIcon + " " + label
			right = NavbarFileStyle.Render(rightText)
		}
		rightText += "   "
		right += "   "
	}
	rightText += navbarUpload
	right += FooterKeyStyle.Render("ctrl+o") + " " + FooterDescStyle.Render("Upload PDF")

	inner := n.width - 2 // NavbarStyle padding
	pad := inner - runewidth.StringWidth(leftText) - runewidth.StringWidth(rightText)
	if pad < 1 {
		// Not enough room: drop the subtitle first, then clip from the right
		left = renderGradient(" " + navbarTitle + " ")
		pad = inner - runewidth.StringWidth(" "+navbarTitle+" ") - runewidth.StringWidth(rightText)
	}
	if pad < 1 {
		pad = 1
	}

	line := left + strings.Repeat(" ", pad) + right
	if inner > 0 {
		line = ansi.Truncate(line, inner, "")
	}
	return NavbarStyle.Width(n.width).Render(line)
}

// parseHexColor parses "#RRGGBB" into its components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

const (
	gradientStart = "#16A34A"
	gradientEnd   = "#1F2937"
)

// renderGradient renders text over a background fading from the primary
// color into the page background
func renderGradient(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	startR, startG, startB := parseHexColor(gradientStart)
	endR, endG, endB := parseHexColor(gradientEnd)

	var sb strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes))
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(ColorText).
			Bold(true)
		sb.WriteString(style.Render(string(r)))
	}
	return sb.String()
}
