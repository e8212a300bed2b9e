package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/pdfchat/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the debug log
	logger.Reset()
	logger.Init(os.DevNull)

	SetStyles(
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
		lipgloss.Color("#16A34A"), lipgloss.Color("#22C55E"), lipgloss.Color("#F9FAFB"),
		lipgloss.Color("#9CA3AF"), lipgloss.Color("#111827"), lipgloss.Color("#F59E0B"),
		50, 256, 60, 80, 10,
	)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
