// Package demo drives the pdfchat model through scripted scenarios and
// captures rendered frames. Backend replies are injected as messages, so a
// demo needs no running backend and always renders the same way.
package demo

import (
	"strconv"
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepAnswer delivers the backend's answer to the pending question.
	StepAnswer
	// StepAnswerError fails the pending question.
	StepAnswerError
	// StepSelectFile picks a file as if chosen in the upload picker.
	StepSelectFile
	// StepUploadDone completes the pending upload.
	StepUploadDone
	// StepUploadError fails the pending upload.
	StepUploadError
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepAnswer
	Text string

	// For StepWait
	Duration time.Duration

	// For StepSelectFile
	FileName string
	Pages    int

	// For StepAnswerError and StepUploadError
	Err error

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 30)
	UserName    string
	Steps       []Step
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	for i, step := range s.Steps {
		if step.Type == StepSelectFile && step.FileName == "" {
			return &ValidationError{Field: "Steps", Message: "step " + strconv.Itoa(i) + " selects a file without a name"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// Answer answers the question that is waiting.
func Answer(text string) Step {
	return Step{Type: StepAnswer, Text: text}
}

// AnswerError fails the question that is waiting with err.
func AnswerError(err error) Step {
	return Step{Type: StepAnswerError, Err: err}
}

// SelectFile picks a file named name. A name ending in .pdf starts an
// upload of a document with the given page count; anything else is
// rejected by the upload bar.
func SelectFile(name string, pages int) Step {
	return Step{Type: StepSelectFile, FileName: name, Pages: pages}
}

// UploadDone completes the pending upload.
func UploadDone() Step {
	return Step{Type: StepUploadDone}
}

// UploadError fails the pending upload with err.
func UploadError(err error) Step {
	return Step{Type: StepUploadError, Err: err}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}
