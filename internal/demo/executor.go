package demo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/app"
	"github.com/zhubert/pdfchat/internal/config"
	"github.com/zhubert/pdfchat/internal/keys"
	"github.com/zhubert/pdfchat/internal/ui"
	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// animationInterval is the frame spacing used while something animates
const animationInterval = 300 * time.Millisecond

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string

	// dir holds the files a scenario selects
	dir string
	// pages is the scripted page count of the file being uploaded
	pages int
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup removes the scratch files created for the scenario.
func (e *Executor) Cleanup() {
	if e.dir != "" {
		os.RemoveAll(e.dir)
		e.dir = ""
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "pdfchat-demo-")
	if err != nil {
		return err
	}
	e.dir = dir

	// Settings saved during a demo land in the scratch dir
	cfg := config.New()
	cfg.SetFilePath(filepath.Join(dir, "config.json"))
	cfg.SetUploadDir(dir)
	if scenario.UserName != "" {
		cfg.SetUserName(scenario.UserName)
	}

	e.model = app.New(cfg, "demo")
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		if e.animating() && step.Duration >= animationInterval {
			e.captureAnimatedFrames(index, step.Duration)
		} else {
			e.captureFrame(index, step.Duration)
		}

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepAnswer, StepAnswerError:
		ex, ok := e.model.InFlight()
		if !ok {
			return fmt.Errorf("no question is waiting for an answer")
		}
		e.update(app.AnswerMsg{ExchangeID: ex.ID, Question: ex.Question, Answer: step.Text, Err: step.Err})
		e.captureFrame(index, 200*time.Millisecond)

	case StepSelectFile:
		if err := e.selectFile(step.FileName, step.Pages); err != nil {
			return err
		}
		e.captureFrame(index, 300*time.Millisecond)

	case StepUploadDone, StepUploadError:
		doc, ok := e.model.PendingUpload()
		if !ok {
			return fmt.Errorf("no upload in progress")
		}
		if e.pages > 0 {
			doc.Pages = e.pages
		}
		e.update(app.UploadResultMsg{Doc: doc, Err: step.Err})
		e.pages = 0
		e.captureFrame(index, 300*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		if e.animating() {
			e.sendTickMessages()
		}
		e.captureFrame(index, 0)
	}

	return nil
}

// selectFile writes a stand-in file and picks it. PDFs get a minimal
// header so they are recognized by extension and content alike.
func (e *Executor) selectFile(name string, pages int) error {
	path := filepath.Join(e.dir, name)
	content := "demo file\n"
	isPDF := strings.EqualFold(filepath.Ext(name), ".pdf")
	if isPDF {
		content = "%PDF-1.4\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	e.update(modals.FilePickedMsg{Path: path, Allowed: isPDF})
	if doc, ok := e.model.PendingUpload(); ok && doc.Path == path {
		e.pages = pages
	}
	return nil
}

// animating reports whether spinners are running
func (e *Executor) animating() bool {
	_, waiting := e.model.InFlight()
	return waiting || e.model.Uploading()
}

// captureFrame captures the current model state as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})

	// Clear annotation after capturing
	e.currentAnnotation = ""
}

// captureAnimatedFrames splits a wait into several frames, advancing the
// spinners between them.
func (e *Executor) captureAnimatedFrames(stepIndex int, totalDuration time.Duration) {
	numFrames := max(int(totalDuration/animationInterval), 1)
	delayPerFrame := totalDuration / time.Duration(numFrames)

	for range numFrames {
		e.sendTickMessages()
		e.captureFrame(stepIndex, delayPerFrame)
	}
}

// sendTickMessages advances the stopwatch and the navbar spinner
func (e *Executor) sendTickMessages() {
	now := time.Now()
	e.update(ui.StopwatchTickMsg(now))
	e.update(ui.FlashTickMsg(now))
}

func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// update feeds msg to the model. Commands are dropped: backend replies are
// injected by the answer and upload steps instead.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// keyPress converts a key string to a tea.KeyPressMsg.
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
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlS:
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
