package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/pdfchat/internal/backend"
	"github.com/zhubert/pdfchat/internal/chat"
	"github.com/zhubert/pdfchat/internal/config"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/logger"
	"github.com/zhubert/pdfchat/internal/ui"
	"github.com/zhubert/pdfchat/internal/upload"
)

// AppState represents the current state of the application.
// Using an explicit state machine prevents invalid state combinations
// and makes state transitions clear and traceable.
type AppState int

const (
	StateIdle    AppState = iota // Ready for a question
	StateWaiting                 // An answer is outstanding
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	navbar *ui.Navbar
	banner *ui.Banner
	chat   *ui.Chat
	footer *ui.Footer
	modal  *ui.Modal

	session *chat.Session
	upload  *upload.State

	asker       backend.Asker
	uploader    backend.Uploader
	ownsBackend bool // backend was built from config and follows its URL

	ctx       context.Context
	cancel    context.CancelFunc
	cancelAsk context.CancelFunc

	width           int
	height          int
	bannerShown     bool
	terminalFocused bool
	ticking         bool // a FlashTick is scheduled

	state AppState
}

// Option configures a Model
type Option func(*Model)

// WithBackend replaces the HTTP client built from the config
func WithBackend(asker backend.Asker, uploader backend.Uploader) Option {
	return func(m *Model) {
		m.asker = asker
		m.uploader = uploader
		m.ownsBackend = false
	}
}

// WithContext sets the parent context of every request
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	m := &Model{
		config:          cfg,
		version:         version,
		navbar:          ui.NewNavbar(),
		banner:          ui.NewBanner(),
		footer:          ui.NewFooter(),
		modal:           ui.NewModal(),
		session:         chat.NewSession(),
		upload:          upload.New(),
		ctx:             context.Background(),
		terminalFocused: true,
		state:           StateIdle,
	}
	m.rebuildBackend()

	for _, opt := range opts {
		opt(m)
	}
	m.ctx, m.cancel = context.WithCancel(m.ctx)

	m.chat = ui.NewChat(cfg.GetUserName(), m.session.Entries())
	m.chat.SetFocused(true)

	logger.WithComponent("app").Info("started",
		"version", version, "backend", cfg.GetBackendURL(), "timeout", cfg.GetTimeout())
	return m
}

// rebuildBackend points the HTTP client at the configured URL and timeout.
// Backends injected with WithBackend are left alone.
func (m *Model) rebuildBackend() {
	if m.asker != nil && !m.ownsBackend {
		return
	}
	client := backend.NewClient(m.config.GetBackendURL(), backend.WithTimeout(m.config.GetTimeout()))
	m.asker = client
	m.uploader = client
	m.ownsBackend = true
}

// State returns the current application state
func (m *Model) State() AppState {
	return m.state
}

// IsIdle returns true if the app is ready for a question
func (m *Model) IsIdle() bool {
	return m.state == StateIdle
}

// InFlight returns the exchange waiting for an answer, if any
func (m *Model) InFlight() (chat.Exchange, bool) {
	return m.session.InFlight()
}

// Uploading reports whether an upload is waiting for the backend
func (m *Model) Uploading() bool {
	return m.upload.Uploading()
}

// PendingUpload returns the document waiting for the backend, if any
func (m *Model) PendingUpload() (document.Document, bool) {
	return m.upload.Pending()
}

// setState transitions to a new state with logging
func (m *Model) setState(newState AppState) {
	if m.state != newState {
		logger.WithComponent("app").Debug("state transition", "from", m.state, "to", newState)
		m.state = newState
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.chat.SetFocused(true), startupModalCmd)
}

// Shutdown cancels every outstanding request
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncComponents()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.terminalFocused = true
		return m, nil

	case tea.BlurMsg:
		m.terminalFocused = false
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		if !m.modal.IsVisible() {
			if path, ok := pastedPDFPath(msg.Content); ok {
				return m, m.selectFile(path)
			}
		}

	case AnswerMsg:
		return m.handleAnswer(msg)

	case UploadResultMsg:
		return m.handleUploadResult(msg)

	case ui.FlashTickMsg:
		return m.handleFlashTick()

	case StartupModalMsg:
		return m.handleStartupModals()
	}

	if handled, cmd := m.routeModalMsg(msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// syncComponents copies session and upload state into the views
func (m *Model) syncComponents() {
	m.navbar.SetFile(m.upload.Label(), m.upload.Uploading())
	m.banner.SetText(m.upload.ErrorMessage())
	m.footer.SetContext(m.session.IsWaiting(), m.modal.IsVisible())

	if m.banner.Visible() != m.bannerShown {
		m.bannerShown = m.banner.Visible()
		m.updateSizes()
	}
}

// ensureTick schedules a FlashTick unless one is already pending
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return ui.FlashTick()
}

// handleFlashTick expires the footer flash and the upload error and keeps
// ticking while either is shown or an upload is running
func (m *Model) handleFlashTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	m.footer.ClearIfExpired()
	if m.upload.ClearIfExpired() {
		logger.WithComponent("upload").Debug("banner cleared")
	}
	if m.upload.Uploading() {
		m.navbar.Advance()
	}

	if m.footer.HasFlash() || m.upload.ErrorMessage() != "" || m.upload.Uploading() {
		return m, m.ensureTick()
	}
	return m, nil
}
