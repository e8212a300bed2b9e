// Package clipboard copies answers to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/pdfchat/internal/logger"
)

// Backend is the system clipboard as seen by this package
type Backend interface {
	Init() error
	Write(text []byte)
}

type systemBackend struct{}

func (systemBackend) Init() error { return clipboard.Init() }

func (systemBackend) Write(text []byte) { clipboard.Write(clipboard.FmtText, text) }

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
)

// SetBackend replaces the clipboard backend and forgets prior initialization
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard
func ResetBackend() {
	SetBackend(systemBackend{})
}

// Init initializes the clipboard. This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText places text on the clipboard
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	backend.Write([]byte(text))
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}
