// Package upload holds the state of the upload bar: which document is
// committed and which error, if any, is on the banner.
package upload

import (
	"strings"
	"time"

	"github.com/zhubert/pdfchat/internal/document"
	pcerrors "github.com/zhubert/pdfchat/internal/errors"
	"github.com/zhubert/pdfchat/internal/logger"
)

// Banner messages
const (
	InvalidTypeMessage = "Invalid file type. Please upload a PDF."
	FailedMessage      = "Failed to upload file. Try again."
	ConnectionMessage  = "Error uploading file. Please check your connection."
)

// ErrorDuration is how long an error stays on the banner
const ErrorDuration = 3 * time.Second

// LabelWords is the number of words of the file name shown in the bar
const LabelWords = 4

// State is the upload bar's state. Like chat.Session it belongs to the UI
// loop and is not safe for concurrent use.
type State struct {
	selected  string
	pending   *document.Document
	errText   string
	errExpiry time.Time
	now       func() time.Time
}

// New creates an empty State
func New() *State {
	return &State{now: time.Now}
}

// SetClock replaces the clock used for error expiry
func (s *State) SetClock(now func() time.Time) {
	s.now = now
}

// Select validates doc and, when it is a PDF, records its name and marks the
// upload pending. It returns true when the caller should start the upload.
// Any other media type sets the invalid-type error and clears the name,
// unless an upload is pending, whose name stays. A PDF selected while
// another upload is pending is ignored.
func (s *State) Select(doc document.Document) bool {
	log := logger.WithComponent("upload")

	if !doc.IsPDF() {
		log.Info("rejected file", "error", pcerrors.InvalidFileType(doc.Name, doc.MediaType))
		if s.pending == nil {
			s.selected = ""
		}
		s.setError(InvalidTypeMessage)
		return false
	}
	if s.pending != nil {
		log.Warn("upload already in progress", "pending", s.pending.Name, "ignored", doc.Name)
		return false
	}

	s.selected = doc.Name
	s.pending = &doc
	return true
}

// Commit marks the pending upload as accepted by the backend
func (s *State) Commit() {
	if s.pending != nil {
		logger.WithComponent("upload").Info("upload committed", "name", s.pending.Name)
	}
	s.pending = nil
}

// Fail marks the pending upload as failed. Transport failures get the
// connection message; a rejection or a local read failure gets the generic one.
func (s *State) Fail(err error) {
	logger.WithComponent("upload").Error("upload failed", "error", err)
	s.pending = nil
	s.selected = ""
	switch pcerrors.GetKind(err) {
	case pcerrors.KindNetwork, pcerrors.KindTimeout, pcerrors.KindCanceled, pcerrors.KindUnknown:
		s.setError(ConnectionMessage)
	default:
		s.setError(FailedMessage)
	}
}

// Uploading reports whether an upload is waiting for the backend
func (s *State) Uploading() bool {
	return s.pending != nil
}

// Pending returns the document being uploaded
func (s *State) Pending() (document.Document, bool) {
	if s.pending == nil {
		return document.Document{}, false
	}
	return *s.pending, true
}

// SelectedFileName returns the full name of the selected file
func (s *State) SelectedFileName() string {
	return s.selected
}

// Label returns the selected name shortened for display
func (s *State) Label() string {
	return Truncate(s.selected, LabelWords)
}

// ErrorMessage returns the banner text, or "" once it has expired
func (s *State) ErrorMessage() string {
	if s.errText == "" || !s.now().Before(s.errExpiry) {
		return ""
	}
	return s.errText
}

// ClearIfExpired drops the error once its own deadline has passed and
// reports whether anything was cleared. A newer error carries a newer
// deadline, so it is never cleared early by an older one's timer.
func (s *State) ClearIfExpired() bool {
	if s.errText == "" || s.now().Before(s.errExpiry) {
		return false
	}
	s.errText = ""
	s.errExpiry = time.Time{}
	return true
}

func (s *State) setError(text string) {
	s.errText = text
	s.errExpiry = s.now().Add(ErrorDuration)
}

// Truncate keeps the first maxWords whitespace-separated words of text,
// joined by single spaces, and appends "..." when anything was dropped.
// Text with maxWords words or fewer is returned unchanged.
func Truncate(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
