package ui

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/zhubert/pdfchat/internal/chat"
	"github.com/zhubert/pdfchat/internal/keys"
	"github.com/zhubert/pdfchat/internal/logger"
)

// StopwatchTickMsg refreshes the processing row while a reply is pending
type StopwatchTickMsg time.Time

// stopwatchInterval is the refresh rate of the processing row
const stopwatchInterval = 100 * time.Millisecond

// assistantAvatar marks assistant messages
const assistantAvatar = "◆"

// spinnerFrames animate the processing avatar and the navbar upload indicator
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StopwatchTick returns a command that sends a tick after stopwatchInterval
func StopwatchTick() tea.Cmd {
	return tea.Tick(stopwatchInterval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// avatarInitial returns the first user-perceived character of name,
// upper-cased, or "?" for an empty name
func avatarInitial(name string) string {
	g := uniseg.NewGraphemes(strings.TrimSpace(name))
	if !g.Next() {
		return "?"
	}
	return strings.ToUpper(g.Str())
}

// Chat is the conversation panel: message history above, input below
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	userName string
	entries  iter.Seq[chat.Entry]

	waiting   bool
	waitStart time.Time
	frame     int
	ticking   bool // a StopwatchTick is scheduled
}

// NewChat creates a chat panel that renders entries from source
func NewChat(userName string, source iter.Seq[chat.Entry]) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Send a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, keys.AltEnter)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		userName: userName,
		entries:  source,
	}
	c.Refresh()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	viewportHeight := height - InputTotalHeight - BorderSize
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	c.viewport.SetWidth(width - BorderSize)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(width - BorderSize - InputPaddingWidth)

	logger.WithComponent("ui").Debug("chat resized",
		"width", width, "height", height, "viewportHeight", viewportHeight)
	c.Refresh()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetUserName changes the name the user avatar is drawn from
func (c *Chat) SetUserName(name string) {
	c.userName = name
	c.Refresh()
}

// Input returns the raw input text
func (c *Chat) Input() string {
	return c.input.Value()
}

// SetInput replaces the input text
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ClearInput empties the input
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetWaiting starts or stops the processing stopwatch. Starting it returns
// the first tick unless one is already scheduled.
func (c *Chat) SetWaiting(waiting bool, since time.Time) tea.Cmd {
	c.waiting = waiting
	c.waitStart = since
	c.Refresh()
	if waiting && !c.ticking {
		c.ticking = true
		return StopwatchTick()
	}
	return nil
}

// IsWaiting reports whether the stopwatch is running
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// Refresh re-renders the history from the entry source. The view follows
// new content only when it was already scrolled to the bottom.
func (c *Chat) Refresh() {
	follow := c.viewport.AtBottom()
	c.viewport.SetContent(c.render())
	if follow {
		c.viewport.GotoBottom()
	}
}

// ScrollToBottom jumps to the newest message
func (c *Chat) ScrollToBottom() {
	c.viewport.GotoBottom()
}

// bubbleWidth is the wrap width of a message body
func (c *Chat) bubbleWidth() int {
	w := c.viewport.Width()
	if w <= 0 {
		w = DefaultWrapWidth
	}
	w = w * MessageMaxWidthRatio / 100
	if w < 10 {
		w = 10
	}
	return w
}

func (c *Chat) render() string {
	var sb strings.Builder
	width := c.bubbleWidth()

	n := 0
	if c.entries != nil {
		for e := range c.entries {
			if n > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(c.renderEntry(e, width))
			n++
		}
	}
	if n == 0 {
		return ChatEmptyStyle.Render("Upload a PDF with ctrl+o, then ask a question about it.")
	}
	return sb.String()
}

func (c *Chat) renderEntry(e chat.Entry, width int) string {
	var head, body string
	switch {
	case e.Pending:
		frame := spinnerFrames[c.frame%len(spinnerFrames)]
		head = ChatPendingAvatarStyle.Render(frame)
		body = ChatPendingStyle.Render(e.Text)
		if !c.waitStart.IsZero() {
			body += " " + StatusLoadingStyle.Render(formatElapsed(time.Since(c.waitStart)))
		}
		return head + " " + body
	case e.Role == chat.RoleUser:
		head = ChatUserAvatarStyle.Render(avatarInitial(c.userName)) + " " + ChatUserStyle.Render(c.userName)
		body = wrapText(e.Text, width)
	default:
		head = ChatAssistantAvatarStyle.Render(assistantAvatar) + " " + ChatAssistantStyle.Render("Assistant")
		body = renderMarkdown(strings.TrimSpace(e.Text), width)
	}
	return head + "\n" + lipgloss.NewStyle().PaddingLeft(4).Render(body)
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case StopwatchTickMsg:
		if !c.waiting {
			c.ticking = false
			return c, nil
		}
		c.frame++
		c.Refresh()
		c.ticking = true
		return c, StopwatchTick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.PgUp:
			c.viewport.PageUp()
			return c, nil
		case keys.PgDown:
			c.viewport.PageDown()
			return c, nil
		case keys.CtrlU:
			c.viewport.HalfPageUp()
			return c, nil
		case keys.CtrlD:
			c.viewport.HalfPageDown()
			return c, nil
		case keys.CtrlUp:
			c.viewport.ScrollUp(1)
			return c, nil
		case keys.CtrlDown:
			c.viewport.ScrollDown(1)
			return c, nil
		}
		if c.focused {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
		return c, nil
	}

	if c.focused {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	history := panelStyle.Width(c.width).Height(c.height - InputTotalHeight).Render(c.viewport.View())
	input := inputStyle.Width(c.width).Render(c.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, history, input)
}
