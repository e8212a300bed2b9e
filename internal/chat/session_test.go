package chat

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func collect(s *Session) []Entry {
	return slices.Collect(s.Entries())
}

func TestSubmit_AppendsUserMessageImmediately(t *testing.T) {
	s := NewSession()
	s.SetInput("What is X?")

	ex, ok := s.SubmitInput()
	if !ok {
		t.Fatal("SubmitInput() should accept non-empty text")
	}
	if ex.Question != "What is X?" {
		t.Errorf("Question = %q", ex.Question)
	}
	if ex.ID == "" {
		t.Error("exchange should have an ID")
	}

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0] != (Message{Role: RoleUser, Text: "What is X?"}) {
		t.Errorf("Messages() = %+v", msgs)
	}
	if s.PendingInput() != "" {
		t.Errorf("PendingInput() = %q, want cleared", s.PendingInput())
	}
	if !s.IsWaiting() {
		t.Error("session should be waiting after submit")
	}
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "   \n  "} {
		s := NewSession()
		s.SetInput(text)

		if _, ok := s.SubmitInput(); ok {
			t.Errorf("Submit(%q) should be ignored", text)
		}
		if s.Len() != 0 || s.IsWaiting() {
			t.Errorf("Submit(%q) changed state", text)
		}
		if s.PendingInput() != text {
			t.Errorf("blank submit should leave input alone")
		}
	}
}

func TestSubmit_KeepsSurroundingWhitespace(t *testing.T) {
	s := NewSession()

	ex, ok := s.Submit("  padded  ")
	if !ok {
		t.Fatal("expected submit")
	}
	if ex.Question != "  padded  " {
		t.Errorf("Question = %q, text is sent as typed", ex.Question)
	}
}

func TestSubmit_RejectedWhileWaiting(t *testing.T) {
	s := NewSession()
	first, _ := s.Submit("one")

	if _, ok := s.Submit("two"); ok {
		t.Fatal("second submit should be rejected while waiting")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got, _ := s.InFlight(); got.ID != first.ID {
		t.Error("in-flight exchange should be unchanged")
	}
}

func TestResolve_Answer(t *testing.T) {
	s := NewSession()
	ex, _ := s.Submit("What is X?")

	if !s.Resolve(ex.ID, "X is Y", nil) {
		t.Fatal("Resolve() should accept the in-flight exchange")
	}

	want := []Message{
		{Role: RoleUser, Text: "What is X?"},
		{Role: RoleAssistant, Text: "X is Y"},
	}
	if !slices.Equal(s.Messages(), want) {
		t.Errorf("Messages() = %+v, want %+v", s.Messages(), want)
	}
	if s.IsWaiting() {
		t.Error("waiting should be reset")
	}
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
	}{
		{"transport error", "", errors.New("connection refused")},
		{"missing answer", "", nil},
		{"error with partial answer", "partial", errors.New("read: EOF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			ex, _ := s.Submit("q")

			s.Resolve(ex.ID, tt.answer, tt.err)

			msgs := s.Messages()
			if len(msgs) != 2 {
				t.Fatalf("len = %d, want exactly one reply appended", len(msgs))
			}
			if msgs[1] != (Message{Role: RoleAssistant, Text: FallbackReply}) {
				t.Errorf("reply = %+v, want fallback", msgs[1])
			}
			if s.IsWaiting() {
				t.Error("waiting must be reset on failure")
			}
		})
	}
}

func TestResolve_StaleIDDropped(t *testing.T) {
	s := NewSession()
	ex, _ := s.Submit("q")

	if s.Resolve("not-"+ex.ID, "late", nil) {
		t.Error("Resolve() with unknown ID should return false")
	}
	if !s.IsWaiting() || s.Len() != 1 {
		t.Error("unknown ID must not touch state")
	}

	s.Resolve(ex.ID, "a", nil)
	if s.Resolve(ex.ID, "again", nil) {
		t.Error("second Resolve() for the same exchange should be dropped")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestResolve_AfterClearDropped(t *testing.T) {
	s := NewSession()
	ex, _ := s.Submit("q")
	s.Clear()

	if s.Resolve(ex.ID, "a", nil) {
		t.Error("reply for a cleared conversation should be dropped")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestEntries_ProcessingRow(t *testing.T) {
	s := NewSession()
	ex, _ := s.Submit("q")

	entries := collect(s)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want message plus processing row", len(entries))
	}
	last := entries[1]
	if !last.Pending || last.Text != ProcessingText {
		t.Errorf("last entry = %+v, want processing row", last)
	}

	s.Resolve(ex.ID, "a", nil)
	for e := range s.Entries() {
		if e.Pending {
			t.Error("processing row should disappear once resolved")
		}
	}
}

func TestEntries_Restartable(t *testing.T) {
	s := NewSession()
	ex, _ := s.Submit("one")
	s.Resolve(ex.ID, "two", nil)

	first := collect(s)
	second := collect(s)
	if !slices.Equal(first, second) || len(first) != 2 {
		t.Errorf("entries differ between ranges: %+v vs %+v", first, second)
	}
}

func TestEntries_EarlyBreak(t *testing.T) {
	s := NewSession()
	for _, q := range []string{"a", "b", "c"} {
		ex, _ := s.Submit(q)
		s.Resolve(ex.ID, q+"!", nil)
	}

	n := 0
	for range s.Entries() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("ranged %d entries, want 2", n)
	}
}

func TestLastAnswer(t *testing.T) {
	s := NewSession()
	if _, ok := s.LastAnswer(); ok {
		t.Error("empty session has no answer")
	}

	ex, _ := s.Submit("q1")
	s.Resolve(ex.ID, "first answer", nil)
	ex, _ = s.Submit("q2")
	s.Resolve(ex.ID, "", errors.New("boom"))

	got, ok := s.LastAnswer()
	if !ok || got != "first answer" {
		t.Errorf("LastAnswer() = %q, %v; fallback replies are skipped", got, ok)
	}
}

func TestExchange_StartedAtUsesClock(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession()
	s.SetClock(func() time.Time { return fixed })

	ex, _ := s.Submit("q")
	if !ex.StartedAt.Equal(fixed) {
		t.Errorf("StartedAt = %v, want %v", ex.StartedAt, fixed)
	}
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Submit("q")

	msgs := s.Messages()
	msgs[0].Text = "mutated"
	if s.Messages()[0].Text != "q" {
		t.Error("Messages() must not expose internal storage")
	}
}
