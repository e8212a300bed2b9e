package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	pcerrors "github.com/zhubert/pdfchat/internal/errors"
)

// DefaultBackendURL is where the backend listens when nothing else is configured
const DefaultBackendURL = "http://127.0.0.1:8000"

// DefaultUserName is shown next to the user's messages
const DefaultUserName = "You"

// Environment variables that override the config file
const (
	EnvBackendURL = "PDFCHAT_BACKEND_URL"
	EnvTimeout    = "PDFCHAT_TIMEOUT"
)

// Config holds the application configuration
type Config struct {
	BackendURL           string `json:"backend_url"`
	TimeoutSeconds       int    `json:"timeout_seconds,omitempty"`       // 0 means requests never time out
	UserName             string `json:"user_name,omitempty"`             // Display name for the user's avatar
	UploadDir            string `json:"upload_dir,omitempty"`            // Directory the file picker opens in
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when an answer arrives unfocused
	LastSeenVersion      string `json:"last_seen_version,omitempty"`     // Last version whose release notes were shown

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pdfchat"), nil
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults that is not backed by a file
func New() *Config {
	return &Config{
		BackendURL: DefaultBackendURL,
		UserName:   DefaultUserName,
	}
}

// Load reads the config from the default path, then applies .env and
// environment overrides.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if err := LoadEnvFiles(".env"); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads the config at path, or returns defaults if it doesn't exist
func LoadFrom(path string) (*Config, error) {
	cfg := New()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, pcerrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pcerrors.ConfigLoadFailed(path, err)
	}
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFiles loads KEY=VALUE pairs into the process environment. Missing
// files are skipped and variables already set are left alone.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return pcerrors.ConfigLoadFailed(f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from the environment. lookup has the signature of
// os.LookupEnv so tests can pass a map-backed function.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	c.mu.Lock()
	if v, ok := lookup(EnvBackendURL); ok && strings.TrimSpace(v) != "" {
		c.BackendURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			c.mu.Unlock()
			return pcerrors.ConfigInvalid(fmt.Sprintf("%s: %v", EnvTimeout, err))
		}
		c.TimeoutSeconds = int(d.Seconds())
	}
	c.mu.Unlock()
	return c.Validate()
}

// ParseTimeout accepts either whole seconds ("30") or a Go duration
// ("1m30s"). Blank means no timeout.
func ParseTimeout(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if secs, aerr := strconv.Atoi(v); aerr == nil {
		d, err = time.Duration(secs)*time.Second, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", v)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %q", v)
	}
	return d, nil
}

// ensureDefaults fills fields that an older or hand-edited file left empty.
// Only called from LoadFrom before the config is shared.
func (c *Config) ensureDefaults() {
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	if c.UserName == "" {
		c.UserName = DefaultUserName
	}
}

// Validate checks the config for invalid values
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := ValidateBackendURL(c.BackendURL); err != nil {
		return err
	}
	if c.TimeoutSeconds < 0 {
		return pcerrors.ConfigInvalid(fmt.Sprintf("timeout must not be negative, got %d", c.TimeoutSeconds))
	}
	return nil
}

// ValidateBackendURL checks that raw is an absolute http(s) URL
func ValidateBackendURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return pcerrors.ConfigInvalid("backend URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return pcerrors.ConfigInvalid(fmt.Sprintf("backend URL %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pcerrors.ConfigInvalid(fmt.Sprintf("backend URL %q must use http or https", raw))
	}
	if u.Host == "" {
		return pcerrors.ConfigInvalid(fmt.Sprintf("backend URL %q has no host", raw))
	}
	return nil
}

// Save writes the config to its file, creating the directory if needed
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return pcerrors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}

	// Write to a temp file and rename so a crash never leaves a torn file
	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp, c.filePath); err != nil {
		os.Remove(tmp)
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath sets the file Save writes to
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns the file Save writes to
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetBackendURL returns the backend base URL without a trailing slash
func (c *Config) GetBackendURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimRight(c.BackendURL, "/")
}

// SetBackendURL validates and sets the backend base URL
func (c *Config) SetBackendURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if err := ValidateBackendURL(raw); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BackendURL = raw
	return nil
}

// GetTimeout returns the per-request timeout; zero means no timeout
func (c *Config) GetTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetTimeout sets the per-request timeout, truncated to whole seconds
func (c *Config) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.TimeoutSeconds = int(d.Seconds())
}

// GetUserName returns the display name used for the user's avatar
func (c *Config) GetUserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.UserName == "" {
		return DefaultUserName
	}
	return c.UserName
}

// SetUserName sets the display name; blank restores the default
func (c *Config) SetUserName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserName = strings.TrimSpace(name)
}

// GetUploadDir returns the directory the file picker starts in
func (c *Config) GetUploadDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.UploadDir != "" {
		return c.UploadDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// SetUploadDir remembers the directory of the last chosen file
func (c *Config) SetUploadDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UploadDir = dir
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled enables or disables desktop notifications
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetLastSeenVersion returns the last version whose release notes were shown
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records that the release notes for version were shown
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}
