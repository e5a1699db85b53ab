package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coderefine/coderefine/internal/editor"
	perrors "github.com/coderefine/coderefine/internal/errors"
)

// DefaultAPIBaseURL is the service address used when nothing else is set.
const DefaultAPIBaseURL = "http://localhost:5000/api"

// EnvAPIBaseURL overrides api_base_url for a single run without saving it.
const EnvAPIBaseURL = "CODEREFINE_API"

// EnvHome relocates the state directory (config, session storage, snippets).
const EnvHome = "CODEREFINE_HOME"

// Config holds the application configuration
type Config struct {
	APIBaseURL            string `json:"api_base_url,omitempty"`            // Base URL of the refinement service
	DefaultLanguage       string `json:"default_language,omitempty"`        // Language preselected in the editor
	ExportDir             string `json:"export_dir,omitempty"`              // Where refined_code_* files are written (default: cwd)
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"` // HTTP timeout, 0 means none
	NotificationsEnabled  bool   `json:"notifications_enabled,omitempty"`   // Desktop notification when a refinement finishes
	Theme                 string `json:"theme,omitempty"`                   // UI theme name (e.g., "dark-purple", "nord")

	mu       sync.RWMutex
	filePath string
}

// Dir returns the directory holding all local state, ~/.coderefine unless
// CODEREFINE_HOME is set.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coderefine"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults that saves to path.
func New(path string) *Config {
	cfg := &Config{filePath: path}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	// Defaults must be filled in before Validate() since Validate() only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills empty fields with defaults.
//
// Thread-safety: This method is NOT thread-safe and must only be called
// before the Config is shared across goroutines.
func (c *Config) ensureInitialized() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = editor.DefaultLanguage
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := validateBaseURL(c.APIBaseURL); err != nil {
		return err
	}
	if !editor.IsLanguage(c.DefaultLanguage) {
		return perrors.ConfigInvalid(fmt.Sprintf("unsupported default_language %q", c.DefaultLanguage))
	}
	if c.RequestTimeoutSeconds < 0 {
		return perrors.ConfigInvalid(fmt.Sprintf("request_timeout_seconds must not be negative, got %d", c.RequestTimeoutSeconds))
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return perrors.ConfigInvalid(fmt.Sprintf("invalid api_base_url %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return perrors.ConfigInvalid(fmt.Sprintf("api_base_url %q must use http or https", raw))
	}
	if u.Host == "" {
		return perrors.ConfigInvalid(fmt.Sprintf("api_base_url %q has no host", raw))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return perrors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config saves to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetAPIBaseURL returns the service base URL without a trailing slash
func (c *Config) GetAPIBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return trimSlash(c.APIBaseURL)
}

// SetAPIBaseURL validates and sets the service base URL
func (c *Config) SetAPIBaseURL(raw string) error {
	if err := validateBaseURL(raw); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIBaseURL = trimSlash(raw)
	return nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// GetDefaultLanguage returns the language preselected in the editor
func (c *Config) GetDefaultLanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultLanguage
}

// SetDefaultLanguage sets the preselected language
func (c *Config) SetDefaultLanguage(lang string) error {
	if !editor.IsLanguage(lang) {
		return perrors.UnknownLanguage(lang)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultLanguage = lang
	return nil
}

// GetExportDir returns the export directory, "." when unset
func (c *Config) GetExportDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ExportDir == "" {
		return "."
	}
	return c.ExportDir
}

// SetExportDir sets the export directory
func (c *Config) SetExportDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ExportDir = dir
}

// GetRequestTimeout returns the HTTP timeout; zero means no timeout
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SetRequestTimeoutSeconds sets the HTTP timeout in seconds
func (c *Config) SetRequestTimeoutSeconds(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RequestTimeoutSeconds = seconds
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}
