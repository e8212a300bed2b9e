package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a footer flash stays visible
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expiry is checked while something is shown
const flashTickInterval = 250 * time.Millisecond

// FlashMessage is a short-lived notice shown in the footer
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// Icon returns the glyph shown before the text
func (t FlashType) Icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

// FlashTickMsg drives expiry of flash messages and the error banner
type FlashTickMsg time.Time

// FlashTick returns a command that delivers a FlashTickMsg shortly
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}
