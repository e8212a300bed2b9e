package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/config"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/keys"
	"github.com/zhubert/pdfchat/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the debug log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// fakeBackend records calls and answers with canned values.
type fakeBackend struct {
	mu          sync.Mutex
	answer      string
	askErr      error
	uploadErr   error
	// blockUpload holds Upload until its context ends
	blockUpload bool
	questions   []string
	uploads     []document.Document
}

func (f *fakeBackend) Ask(ctx context.Context, question string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, question)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.answer, f.askErr
}

func (f *fakeBackend) Upload(ctx context.Context, doc document.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, doc)
	if f.blockUpload {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("upload was never canceled")
		}
	}
	return f.uploadErr
}

// testConfig creates a config saved under a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.SetFilePath(filepath.Join(t.TempDir(), "config.json"))
	cfg.SetUploadDir(t.TempDir())
	return cfg
}

// testModel creates a test Model backed by fb.
func testModel(cfg *config.Config, fb *fakeBackend) *Model {
	return New(cfg, "0.0.0-test", WithBackend(fb, fb))
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, fb *fakeBackend, width, height int) *Model {
	m := testModel(cfg, fb)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+o", "pgup"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// ask types question, submits it and returns the exchange ID.
func ask(t *testing.T, m *Model, question string) string {
	t.Helper()
	typeText(m, question)
	sendKey(m, keys.Enter)
	ex, ok := m.session.InFlight()
	if !ok {
		t.Fatalf("expected %q to be in flight", question)
	}
	return ex.ID
}

// simulateAnswer injects an AnswerMsg into the model.
func simulateAnswer(m *Model, id, answer string, err error) *Model {
	result, _ := m.Update(AnswerMsg{ExchangeID: id, Answer: answer, Err: err})
	return result.(*Model)
}

// writeFile creates a file with the given name and content in a temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// findMsg runs cmd, unwrapping batches, and returns the first message of
// type T. Tick commands in a batch block for their interval.
func findMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	switch msg := cmd().(type) {
	case T:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if found, ok := findMsg[T](c); ok {
				return found, true
			}
		}
	}
	return zero, false
}
