// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/pdfchat/internal/logger"
)

// AppName is the title of every notification
const AppName = "pdfchat"

// maxPreview bounds the answer text shown in a notification, in runes
const maxPreview = 120

var (
	mu     sync.Mutex
	notify = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notify = fn
}

// ResetNotifier restores the beeep notifier
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)

	mu.Lock()
	fn := notify
	mu.Unlock()

	// Empty icon: beeep picks the platform default
	if err := fn(title, message, ""); err != nil {
		log.Warn("notification failed", "error", err)
		return err
	}
	return nil
}

// AnswerReady notifies that a reply to question has arrived
func AnswerReady(question string) error {
	return Send(AppName, "Answer ready: "+preview(question))
}

// UploadFinished notifies that name was uploaded
func UploadFinished(name string) error {
	return Send(AppName, name+" is ready for questions")
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= maxPreview {
		return s
	}
	return string(r[:maxPreview-1]) + "…"
}
