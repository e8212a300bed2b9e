// Package errors provides structured error types for pdfchat.
// These errors record which operation failed and what category of failure it
// was, so the UI can pick a message without parsing strings.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindNetwork
	KindBackend
	KindProtocol
	KindTimeout
	KindCanceled
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindBackend:
		return "backend error"
	case KindProtocol:
		return "protocol error"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for pdfchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// transportKind maps a failed round trip to a Kind. Context errors win over
// the generic network kind so a cancelled request is not reported as an
// outage.
func transportKind(err error) Kind {
	switch {
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindNetwork
	}
}

// File errors
func InvalidFileType(name, mediaType string) error {
	return E(Op("upload.Select"), KindInvalid, fmt.Sprintf("%s has type %q, want application/pdf", name, mediaType))
}

func FileOpenFailed(path string, err error) error {
	return E(Op("document.Inspect"), KindIO, fmt.Sprintf("failed to open %s", path), err)
}

// Backend errors
func AskFailed(err error) error {
	return E(Op("backend.Ask"), transportKind(err), "request failed", err)
}

func UploadFailed(name string, err error) error {
	return E(Op("backend.Upload"), transportKind(err), fmt.Sprintf("failed to upload %s", name), err)
}

func MissingAnswer() error {
	return E(Op("backend.Ask"), KindProtocol, "response has no answer")
}

func MalformedResponse(op Op, err error) error {
	return E(op, KindProtocol, "failed to decode response", err)
}

func BackendStatus(op Op, status int, detail string) error {
	if detail != "" {
		return E(op, KindBackend, fmt.Sprintf("status %d: %s", status, detail))
	}
	return E(op, KindBackend, fmt.Sprintf("status %d", status))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
