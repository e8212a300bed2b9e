package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestNavbar_View(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		uploading bool
		contains  []string
		excludes  []string
	}{
		{
			name:     "no file",
			contains: []string{navbarTitle, navbarSubtitle, "ctrl+o", "Upload PDF"},
			excludes: []string{navbarFileIcon, "uploading"},
		},
		{
			name:     "uploaded file",
			label:    "annual report 2024...",
			contains: []string{navbarFileIcon, "annual report 2024..."},
			excludes: []string{"uploading"},
		},
		{
			name:      "upload running",
			label:     "notes.pdf",
			uploading: true,
			contains:  []string{"uploading", "notes.pdf", spinnerFrames[0]},
			excludes:  []string{navbarFileIcon},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavbar()
			n.SetWidth(120)
			n.SetFile(tt.label, tt.uploading)
			view := ansi.Strip(n.View())

			for _, s := range tt.contains {
				if !strings.Contains(view, s) {
					t.Errorf("expected %q in %q", s, view)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(view, s) {
					t.Errorf("did not expect %q in %q", s, view)
				}
			}
		})
	}
}

func TestNavbar_Advance(t *testing.T) {
	n := NewNavbar()
	n.SetWidth(120)
	n.SetFile("a.pdf", true)
	n.Advance()

	if view := ansi.Strip(n.View()); !strings.Contains(view, spinnerFrames[1]) {
		t.Errorf("expected second spinner frame, got %q", view)
	}
}

func TestNavbar_NarrowWidth(t *testing.T) {
	n := NewNavbar()
	n.SetWidth(40)
	n.SetFile("a.pdf", false)

	view := n.View()
	if w := ansi.StringWidth(view); w > 40 {
		t.Errorf("navbar is %d cells wide, want at most 40", w)
	}
	if strings.Contains(ansi.Strip(view), navbarSubtitle) {
		t.Error("subtitle should be dropped when space is short")
	}
}

func TestClipLabel(t *testing.T) {
	short := "report.pdf"
	if got := clipLabel(short); got != short {
		t.Errorf("clipLabel(%q) = %q", short, got)
	}

	long := strings.Repeat("x", MaxLabelWidth+10)
	got := clipLabel(long)
	if ansi.StringWidth(got) != MaxLabelWidth {
		t.Errorf("clipped label is %d cells, want %d", ansi.StringWidth(got), MaxLabelWidth)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#16A34A")
	if r != 0x16 || g != 0xA3 || b != 0x4A {
		t.Errorf("parseHexColor = %d,%d,%d", r, g, b)
	}

	r, g, b = parseHexColor("bogus")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("invalid input should yield zeros, got %d,%d,%d", r, g, b)
	}
}

func TestRenderGradient(t *testing.T) {
	if renderGradient("") != "" {
		t.Error("empty text should render empty")
	}
	if got := ansi.Strip(renderGradient("pdfchat")); got != "pdfchat" {
		t.Errorf("gradient should keep the text, got %q", got)
	}
}

func TestBanner(t *testing.T) {
	b := NewBanner()
	b.SetWidth(60)

	if b.Visible() || b.View() != "" {
		t.Error("empty banner should be hidden")
	}

	b.SetText("Invalid file type. Please upload a PDF.")
	if !b.Visible() {
		t.Fatal("banner should be visible")
	}
	if view := ansi.Strip(b.View()); !strings.Contains(view, "Invalid file type. Please upload a PDF.") {
		t.Errorf("unexpected banner %q", view)
	}

	b.SetWidth(20)
	if w := ansi.StringWidth(b.View()); w > 20 {
		t.Errorf("banner is %d cells wide, want at most 20", w)
	}

	b.SetText("")
	if b.Visible() {
		t.Error("clearing the text should hide the banner")
	}
}
