package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/clipboard"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/keys"
	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/ui/modals"
)

// handleKey processes key presses. An open modal sees every key first.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		logger.WithComponent("app").Info("quit requested")
		m.Shutdown()
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case keys.Escape:
		if m.session.IsWaiting() {
			m.cancelInFlight()
			return m, nil
		}

	case keys.Enter:
		return m.submit()

	case keys.CtrlO:
		return m, m.modal.Show(modals.NewFilePickerState(m.config.GetUploadDir()))

	case keys.CtrlS:
		return m, m.modal.Show(modals.NewSettingsState(modals.Settings{
			BackendURL:    m.config.GetBackendURL(),
			Timeout:       m.config.GetTimeout(),
			UserName:      m.config.GetUserName(),
			Notifications: m.config.GetNotificationsEnabled(),
		}))

	case keys.CtrlY:
		return m, m.copyLastAnswer()

	case keys.CtrlL:
		if m.session.Len() == 0 {
			return m, nil
		}
		return m, m.modal.Show(modals.NewConfirmClearState(m.session.Len()))
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleModalKey handles esc and enter for the open modal and forwards
// everything else to it
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.modal.State.(*modals.WhatsNewState); ok {
		switch msg.String() {
		case keys.Enter, keys.Escape:
			return m, m.dismissWhatsNew()
		}
	}

	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		switch s := m.modal.State.(type) {
		case *modals.SettingsState:
			return m, m.applySettings(s)
		case *modals.ConfirmClearState:
			m.modal.Hide()
			m.clearConversation()
			return m, m.ShowFlashInfo("Conversation cleared")
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// routeModalMsg forwards non-key messages to the open modal. The file
// picker reads directories asynchronously and reports its pick as a
// FilePickedMsg, which is handled here rather than passed on.
func (m *Model) routeModalMsg(msg tea.Msg) (bool, tea.Cmd) {
	if picked, ok := msg.(modals.FilePickedMsg); ok {
		m.modal.Hide()
		if !picked.Allowed {
			logger.WithComponent("upload").Debug("picker chose a disabled file", "path", picked.Path)
		}
		return true, m.selectFile(picked.Path)
	}

	if !m.modal.IsVisible() {
		return false, nil
	}
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return true, cmd
}

// submit sends the composed text as a question
func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.session.SetInput(m.chat.Input())
	ex, ok := m.session.SubmitInput()
	if !ok {
		if m.session.IsWaiting() && strings.TrimSpace(m.chat.Input()) != "" {
			return m, m.ShowFlashInfo("Still waiting for the previous answer")
		}
		return m, nil
	}

	m.chat.ClearInput()
	m.setState(StateWaiting)

	ctx, cancel := m.requestContext()
	m.cancelAsk = cancel

	m.chat.Refresh()
	m.chat.ScrollToBottom()
	return m, tea.Batch(
		AskCmd(ctx, cancel, m.asker, ex),
		m.chat.SetWaiting(true, ex.StartedAt),
	)
}

// cancelInFlight aborts the outstanding ask. The request returns a
// cancellation error, which resolves the exchange with the fallback reply.
func (m *Model) cancelInFlight() {
	if ex, ok := m.session.InFlight(); ok {
		logger.WithExchange(ex.ID).Info("ask canceled by user")
	}
	if m.cancelAsk != nil {
		m.cancelAsk()
		m.cancelAsk = nil
	}
}

// handleAnswer resolves the exchange the answer belongs to
func (m *Model) handleAnswer(msg AnswerMsg) (tea.Model, tea.Cmd) {
	if !m.session.Resolve(msg.ExchangeID, msg.Answer, msg.Err) {
		return m, nil
	}

	m.cancelAsk = nil
	m.setState(StateIdle)
	m.chat.SetWaiting(false, time.Time{})
	m.chat.Refresh()

	if msg.Err != nil || msg.Answer == "" {
		return m, nil
	}
	return m, m.notifyAnswer(msg.Question)
}

// clearConversation drops every message, abandoning a pending reply
func (m *Model) clearConversation() {
	m.cancelInFlight()
	m.session.Clear()
	m.setState(StateIdle)
	m.chat.SetWaiting(false, time.Time{})
	m.chat.Refresh()
}

// selectFile inspects path and starts its upload when it is an acceptable
// PDF. Everything else ends on the error banner.
func (m *Model) selectFile(path string) tea.Cmd {
	log := logger.WithComponent("upload")

	doc, err := document.Inspect(path)
	if err != nil {
		log.Warn("cannot read selected file", "path", path, "error", err)
		if m.upload.Uploading() {
			return m.ShowFlashWarning("Cannot read " + filepath.Base(path))
		}
		m.upload.Fail(err)
		return m.ensureTick()
	}
	m.config.SetUploadDir(filepath.Dir(doc.Path))

	// a non-PDF still gets the banner while another upload is pending
	if doc.IsPDF() && m.upload.Uploading() {
		return m.ShowFlashWarning("An upload is already in progress")
	}
	if !m.upload.Select(doc) {
		return m.ensureTick()
	}

	log.Info("upload started", "name", doc.Name, "pages", doc.Pages, "size", doc.Size)
	ctx, cancel := m.requestContext()
	return tea.Batch(UploadCmd(ctx, cancel, m.uploader, doc), m.ensureTick())
}

// handleUploadResult commits or fails the pending upload
func (m *Model) handleUploadResult(msg UploadResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.upload.Fail(msg.Err)
		return m, m.ensureTick()
	}

	m.upload.Commit()
	text := "Uploaded " + msg.Doc.Name
	if msg.Doc.Pages > 0 {
		text += fmt.Sprintf(" (%d %s)", msg.Doc.Pages, plural(msg.Doc.Pages, "page"))
	}
	return m, tea.Batch(m.ShowFlashSuccess(text), m.notifyUpload(msg.Doc.Name))
}

// copyLastAnswer puts the newest answer on the system clipboard
func (m *Model) copyLastAnswer() tea.Cmd {
	answer, ok := m.session.LastAnswer()
	if !ok {
		return m.ShowFlashInfo("No answer to copy yet")
	}
	if err := clipboard.WriteText(answer); err != nil {
		logger.WithComponent("clipboard").Warn("copy failed", "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Answer copied")
}

// pastedPDFPath recognizes a dropped file: a single path to an existing
// .pdf file, optionally quoted or with escaped spaces
func pastedPDFPath(content string) (string, bool) {
	p := strings.TrimSpace(content)
	if p == "" || strings.Contains(p, "\n") {
		return "", false
	}
	if unq, err := strconv.Unquote(p); err == nil {
		p = unq
	} else {
		p = strings.Trim(p, "'")
	}
	p = strings.ReplaceAll(p, `\ `, " ")
	p = strings.TrimPrefix(p, "file://")

	if !strings.EqualFold(filepath.Ext(p), ".pdf") {
		return "", false
	}
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
