package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/pdfchat/internal/app"
	"github.com/zhubert/pdfchat/internal/backend"
	"github.com/zhubert/pdfchat/internal/config"
	"github.com/zhubert/pdfchat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	backendURL            string
	timeout               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "pdfchat",
	Short: "Chat with a PDF from your terminal",
	Long: `pdfchat is a terminal client for a PDF question-answering backend.
Upload a PDF with ctrl+o, then ask questions about it; answers come from
the backend's /ask endpoint.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (overrides config and "+config.EnvBackendURL+")")
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "", "Request timeout, in seconds or as a duration like 90s (overrides config)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("pdfchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("pdfchat %s\n", version)
}

// loadConfig loads the config file and environment, then applies the
// persistent flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config) error {
	if backendURL != "" {
		if err := cfg.SetBackendURL(backendURL); err != nil {
			return fmt.Errorf("invalid --backend: %w", err)
		}
	}
	if timeout != "" {
		d, err := config.ParseTimeout(timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.SetTimeout(d)
	}
	return nil
}

// newClient builds the backend client the headless commands use
func newClient(cfg *config.Config) *backend.Client {
	return backend.NewClient(cfg.GetBackendURL(), backend.WithTimeout(cfg.GetTimeout()))
}

// requestContext bounds a headless request by the configured timeout
func requestContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Create and run the app
	m := app.New(cfg, version, app.WithContext(ctx))
	defer m.Shutdown()
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
