// Package chat holds the conversation state for one chat view: the ordered
// message list, the text being composed, and the exchange currently waiting
// for a reply.
package chat

import (
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/pdfchat/internal/logger"
)

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// FallbackReply is appended in place of an answer when an exchange fails
const FallbackReply = "Sorry, there was an error. Please try again."

// ProcessingText is shown after the last message while a reply is pending
const ProcessingText = "Processing your request..."

// Message is one entry in the conversation. It has no identity beyond its
// position.
type Message struct {
	Role Role
	Text string
}

// Exchange is one submit-to-reply cycle.
type Exchange struct {
	ID        string
	Question  string
	StartedAt time.Time
}

// Entry is one renderable row. Pending marks the synthetic processing row
// that follows the real messages while a reply is outstanding.
type Entry struct {
	Message
	Pending bool
}

// Session is the state of one chat view. It is owned by a single goroutine
// (the UI loop) and is not safe for concurrent use.
type Session struct {
	messages []Message
	input    string
	inFlight *Exchange
	now      func() time.Time
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{now: time.Now}
}

// SetClock replaces the clock used to stamp exchanges
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// SetInput sets the text being composed
func (s *Session) SetInput(text string) {
	s.input = text
}

// PendingInput returns the text being composed
func (s *Session) PendingInput() string {
	return s.input
}

// IsWaiting reports whether an exchange is waiting for its reply
func (s *Session) IsWaiting() bool {
	return s.inFlight != nil
}

// InFlight returns the exchange waiting for a reply, if any
func (s *Session) InFlight() (Exchange, bool) {
	if s.inFlight == nil {
		return Exchange{}, false
	}
	return *s.inFlight, true
}

// SubmitInput submits the pending input
func (s *Session) SubmitInput() (Exchange, bool) {
	return s.Submit(s.input)
}

// Submit starts an exchange for text. Blank text is ignored, as is any
// submit while another exchange is still waiting. On success the user
// message is already appended and the pending input cleared; the caller
// sends ex.Question to the backend and reports back through Resolve.
func (s *Session) Submit(text string) (Exchange, bool) {
	if strings.TrimSpace(text) == "" {
		return Exchange{}, false
	}
	if s.inFlight != nil {
		logger.WithExchange(s.inFlight.ID).Debug("submit ignored, reply pending")
		return Exchange{}, false
	}

	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.input = ""

	ex := Exchange{
		ID:        uuid.NewString(),
		Question:  text,
		StartedAt: s.now(),
	}
	s.inFlight = &ex
	logger.WithExchange(ex.ID).Debug("exchange started", "chars", len(text))
	return ex, true
}

// Resolve concludes the exchange with the given ID. A nil err with a
// non-empty answer appends the answer; anything else appends FallbackReply.
// Results for an exchange that is no longer in flight are dropped and
// Resolve returns false.
func (s *Session) Resolve(id, answer string, err error) bool {
	if s.inFlight == nil || s.inFlight.ID != id {
		logger.WithExchange(id).Debug("dropping stale reply")
		return false
	}
	ex := *s.inFlight
	s.inFlight = nil

	log := logger.WithExchange(id)
	text := answer
	if err != nil || answer == "" {
		log.Error("exchange failed", "error", err, "elapsed", s.now().Sub(ex.StartedAt))
		text = FallbackReply
	} else {
		log.Debug("exchange finished", "chars", len(answer), "elapsed", s.now().Sub(ex.StartedAt))
	}
	s.messages = append(s.messages, Message{Role: RoleAssistant, Text: text})
	return true
}

// Messages returns a copy of the conversation
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of real messages
func (s *Session) Len() int {
	return len(s.messages)
}

// Entries yields every message in order followed by the processing row when a
// reply is pending. Each call starts from the beginning, so the sequence can
// be ranged over any number of times.
func (s *Session) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, m := range s.messages {
			if !yield(Entry{Message: m}) {
				return
			}
		}
		if s.inFlight != nil {
			yield(Entry{Message: Message{Role: RoleAssistant, Text: ProcessingText}, Pending: true})
		}
	}
}

// LastAnswer returns the most recent assistant message that is a real answer
func (s *Session) LastAnswer() (string, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if m.Role == RoleAssistant && m.Text != FallbackReply {
			return m.Text, true
		}
	}
	return "", false
}

// Clear drops the conversation. An exchange still in flight is abandoned and
// its eventual reply will be dropped by Resolve.
func (s *Session) Clear() {
	s.messages = nil
	s.inFlight = nil
}
