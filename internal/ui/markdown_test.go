package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{
			name:     "short text within width",
			text:     "hello world",
			width:    20,
			expected: "hello world",
		},
		{
			name:     "long text needs wrap",
			text:     "this is a longer text that needs wrapping",
			width:    20,
			expected: "this is a longer\ntext that needs\nwrapping",
		},
		{
			name:     "zero width returns original",
			text:     "hello world",
			width:    0,
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); got != tt.expected {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expected)
			}
		})
	}
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "nothing special", "nothing special"},
		{"bold", "a **bold** word", "a bold word"},
		{"inline code", "run `go test` now", "run go test now"},
		{"bold inside code is literal", "see `**x**`", "see **x**"},
		{"both", "**Note:** use `ls`", "Note: use ls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(renderInline(tt.input)); got != tt.expected {
				t.Errorf("renderInline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderMarkdownLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"heading", "## Summary", "Summary"},
		{"bullet dash", "- first", "  • first"},
		{"bullet star", "* second", "  • second"},
		{"numbered", "2. step two", "  2. step two"},
		{"plain", "just text", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(renderMarkdownLine(tt.input, 80)); got != tt.expected {
				t.Errorf("renderMarkdownLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderMarkdownLine_BulletContinuation(t *testing.T) {
	got := ansi.Strip(renderMarkdownLine("- one two three four five six", 14))
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped bullet, got %q", got)
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "    ") {
			t.Errorf("continuation line %q should be indented", l)
		}
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	content := "Here:\n```go\nfunc main() {}\n```\nDone."
	got := ansi.Strip(renderMarkdown(content, 80))

	for _, want := range []string{"Here:", "func main() {}", "Done."} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "```") {
		t.Error("fences should not be rendered")
	}
}

func TestRenderMarkdown_UnterminatedFence(t *testing.T) {
	got := ansi.Strip(renderMarkdown("```\nleft open", 80))
	if !strings.Contains(got, "left open") {
		t.Errorf("unterminated code should still render, got %q", got)
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	got := ansi.Strip(highlightCode("x = 1", "no-such-language"))
	if got != "x = 1" {
		t.Errorf("highlightCode kept %q, want %q", got, "x = 1")
	}
}
