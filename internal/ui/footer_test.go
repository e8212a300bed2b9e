package ui

import (
	"strings"
	"testing"
	"time"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/x/ansi"
)

func bindingKeys(bs []key.Binding) []string {
	var out []string
	for _, b := range bs {
		out = append(out, b.Help().Desc)
	}
	return out
}

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if footer.flashMessage != nil {
		t.Error("Expected no flash message initially")
	}
	if len(footer.Bindings()) == 0 {
		t.Error("Expected default bindings")
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_Bindings(t *testing.T) {
	tests := []struct {
		name      string
		waiting   bool
		modalOpen bool
		want      string
		notWant   string
	}{
		{"idle", false, false, "send", "cancel"},
		{"waiting", true, false, "cancel", "send"},
		{"modal", false, true, "confirm", "send"},
		{"modal while waiting", true, true, "close", "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetContext(tt.waiting, tt.modalOpen)
			descs := strings.Join(bindingKeys(footer.Bindings()), ",")

			if !strings.Contains(descs, tt.want) {
				t.Errorf("expected %q in %q", tt.want, descs)
			}
			if strings.Contains(descs, tt.notWant) {
				t.Errorf("did not expect %q in %q", tt.notWant, descs)
			}
		})
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("Test error message", FlashError)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Test error message" {
		t.Errorf("Expected text 'Test error message', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashError {
		t.Errorf("Expected type FlashError, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected default duration, got %v", footer.flashMessage.Duration)
	}
	if !footer.HasFlash() {
		t.Error("HasFlash() should be true")
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("msg", FlashInfo)
	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected flash to be cleared")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlashWithDuration("live", FlashInfo, time.Hour)
	footer.ClearIfExpired()
	if !footer.HasFlash() {
		t.Error("live flash should survive")
	}

	footer.SetFlashWithDuration("gone", FlashInfo, time.Millisecond)
	footer.flashMessage.CreatedAt = time.Now().Add(-time.Second)
	footer.ClearIfExpired()
	if footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
}

func TestFooter_View(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	view := ansi.Strip(footer.View())
	if !strings.Contains(view, "ctrl+o") {
		t.Errorf("expected upload hint in footer, got %q", view)
	}

	footer.SetFlash("Copied answer", FlashSuccess)
	view = ansi.Strip(footer.View())
	if !strings.Contains(view, "Copied answer") {
		t.Errorf("expected flash text, got %q", view)
	}
	if !strings.Contains(view, FlashSuccess.Icon()) {
		t.Errorf("expected success icon, got %q", view)
	}
	if strings.Contains(view, "ctrl+o") {
		t.Error("flash should replace the key hints")
	}
}

func TestFlashType_Icon(t *testing.T) {
	tests := []struct {
		typ  FlashType
		icon string
	}{
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
		{FlashWarning, "⚠"},
		{FlashError, "✕"},
	}
	for _, tt := range tests {
		if got := tt.typ.Icon(); got != tt.icon {
			t.Errorf("Icon() = %q, want %q", got, tt.icon)
		}
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	fresh := &FlashMessage{CreatedAt: time.Now(), Duration: time.Minute}
	if fresh.IsExpired() {
		t.Error("fresh message should not be expired")
	}
	old := &FlashMessage{CreatedAt: time.Now().Add(-2 * time.Minute), Duration: time.Minute}
	if !old.IsExpired() {
		t.Error("old message should be expired")
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
