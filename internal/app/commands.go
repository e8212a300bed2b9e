package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/backend"
	"github.com/zhubert/pdfchat/internal/chat"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/notification"
)

// AnswerMsg carries the backend's reply for one exchange
type AnswerMsg struct {
	ExchangeID string
	Question   string
	Answer     string
	Err        error
}

// UploadResultMsg reports the end of an upload
type UploadResultMsg struct {
	Doc document.Document
	Err error
}

// requestContext derives a context for one backend call, bounded by the
// configured timeout when there is one
func (m *Model) requestContext() (context.Context, context.CancelFunc) {
	if d := m.config.GetTimeout(); d > 0 {
		return context.WithTimeout(m.ctx, d)
	}
	return context.WithCancel(m.ctx)
}

// AskCmd sends the exchange's question and reports the reply as an AnswerMsg.
// cancel is released once the call returns.
func AskCmd(ctx context.Context, cancel context.CancelFunc, asker backend.Asker, ex chat.Exchange) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		answer, err := asker.Ask(ctx, ex.Question)
		if err != nil {
			logger.WithExchange(ex.ID).Warn("ask failed", "error", err)
		}
		return AnswerMsg{ExchangeID: ex.ID, Question: ex.Question, Answer: answer, Err: err}
	}
}

// UploadCmd sends doc to the backend and reports an UploadResultMsg
func UploadCmd(ctx context.Context, cancel context.CancelFunc, uploader backend.Uploader, doc document.Document) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		err := uploader.Upload(ctx, doc)
		return UploadResultMsg{Doc: doc, Err: err}
	}
}

// notifyCmd runs a desktop notification off the UI loop
func notifyCmd(send func() error) tea.Cmd {
	return func() tea.Msg {
		if err := send(); err != nil {
			logger.WithComponent("notification").Debug("notification failed", "error", err)
		}
		return nil
	}
}

// shouldNotify reports whether a finished request deserves a desktop
// notification: only when enabled and the terminal is in the background
func (m *Model) shouldNotify() bool {
	return m.config.GetNotificationsEnabled() && !m.terminalFocused
}

func (m *Model) notifyAnswer(question string) tea.Cmd {
	if !m.shouldNotify() {
		return nil
	}
	return notifyCmd(func() error { return notification.AnswerReady(question) })
}

func (m *Model) notifyUpload(name string) tea.Cmd {
	if !m.shouldNotify() {
		return nil
	}
	return notifyCmd(func() error { return notification.UploadFinished(name) })
}
