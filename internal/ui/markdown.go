package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	numberedPattern   = regexp.MustCompile(`^(\d{1,3})\. (.*)$`)
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// wrapText wraps text to width, keeping ANSI sequences intact
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// renderInline applies bold and inline code styling
func renderInline(line string) string {
	var spans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		spans = append(spans, MarkdownInlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	for i, s := range spans {
		line = strings.Replace(line, fmt.Sprintf("\x00%d\x00", i), s, 1)
	}
	return line
}

// indentContinuation indents every line after the first
func indentContinuation(text, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders one line outside a code block
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	for _, prefix := range []string{"### ", "## ", "# "} {
		if strings.HasPrefix(trimmed, prefix) {
			return MarkdownHeadingStyle.Render(strings.TrimPrefix(trimmed, prefix))
		}
	}

	if strings.HasPrefix(trimmed, "> ") {
		return MarkdownBlockquoteStyle.Render(wrapText(renderInline(trimmed[2:]), width-2))
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		bullet := MarkdownListBulletStyle.Render("•")
		body := wrapText(renderInline(trimmed[2:]), width-4)
		return "  " + bullet + " " + indentContinuation(body, "    ")
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := MarkdownListBulletStyle.Render(m[1] + ".")
		body := wrapText(renderInline(m[2]), width-6)
		return "  " + number + " " + indentContinuation(body, "     ")
	}

	return wrapText(renderInline(line), width)
}

// renderMarkdown renders an answer: headings, lists, bold, inline code and
// fenced code blocks with syntax highlighting
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	var code strings.Builder
	inCode := false
	lang := ""

	flushCode := func() {
		if result.Len() > 0 {
			result.WriteString("\n")
		}
		result.WriteString(highlightCode(code.String(), lang))
		result.WriteString("\n")
		code.Reset()
		lang = ""
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inCode {
				inCode = false
				flushCode()
			} else {
				inCode = true
				lang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			}
			continue
		}

		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// Unterminated fence: show what we have
	if inCode {
		flushCode()
	}

	return strings.TrimRight(result.String(), "\n")
}
