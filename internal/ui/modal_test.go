package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/pdfchat/internal/ui/modals"
)

func TestNewModal(t *testing.T) {
	modal := NewModal()

	if modal == nil {
		t.Fatal("NewModal() returned nil")
	}
	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}
	if modal.State != nil {
		t.Error("New modal should have nil state")
	}
}

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()

	if cmd := modal.Show(modals.NewConfirmClearState(2)); cmd != nil {
		t.Error("confirm modal has nothing to load")
	}
	if !modal.IsVisible() {
		t.Error("Modal should be visible after Show")
	}

	modal.Hide()
	if modal.IsVisible() {
		t.Error("Modal should not be visible after Hide")
	}
	if modal.State != nil {
		t.Error("Modal state should be nil after Hide")
	}
}

func TestModal_ShowRunsInit(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "doc.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	modal := NewModal()
	cmd := modal.Show(modals.NewFilePickerState(dir))
	if cmd == nil {
		t.Fatal("file picker should read its directory when shown")
	}

	modal.Update(cmd())
	if !strings.Contains(ansi.Strip(modal.View(120, 40)), "doc.pdf") {
		t.Error("expected directory listing after init")
	}
}

func TestModal_Error(t *testing.T) {
	modal := NewModal()

	if modal.GetError() != "" {
		t.Error("New modal should have no error")
	}

	modal.SetError("Something went wrong")
	if modal.GetError() != "Something went wrong" {
		t.Errorf("Expected error message, got %q", modal.GetError())
	}

	// Show clears error
	modal.Show(modals.NewConfirmClearState(1))
	if modal.GetError() != "" {
		t.Error("Show should clear error")
	}

	modal.SetError("New error")
	view := ansi.Strip(modal.View(80, 24))
	if !strings.Contains(view, "New error") {
		t.Error("View should include the error")
	}

	// Hide clears error
	modal.Hide()
	if modal.GetError() != "" {
		t.Error("Hide should clear error")
	}
}

func TestModal_View(t *testing.T) {
	modal := NewModal()

	if view := modal.View(80, 24); view != "" {
		t.Error("View should return empty string when not visible")
	}

	modal.Show(modals.NewConfirmClearState(3))
	view := modal.View(80, 24)
	if !strings.Contains(ansi.Strip(view), "Clear conversation?") {
		t.Error("View should render the modal title")
	}
}

func TestModal_View_WidthClamping(t *testing.T) {
	modal := NewModal()
	modal.Show(modals.NewSettingsState(modals.Settings{BackendURL: "http://localhost:8000"}))

	for _, screen := range []int{200, 100, 50} {
		view := modal.View(screen, 40)
		if view == "" {
			t.Fatalf("View should render at width %d", screen)
		}
		for i, line := range strings.Split(view, "\n") {
			if w := lipgloss.Width(line); w > screen {
				t.Errorf("screen %d: line %d is %d cells wide", screen, i, w)
			}
		}
	}
}
