package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got := cfg.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", got, DefaultAPIBaseURL)
	}
	if got := cfg.GetDefaultLanguage(); got != "python" {
		t.Errorf("DefaultLanguage = %q, want python", got)
	}
	if got := cfg.GetExportDir(); got != "." {
		t.Errorf("ExportDir = %q, want .", got)
	}
	if cfg.GetRequestTimeout() != 0 {
		t.Errorf("RequestTimeout = %v, want 0", cfg.GetRequestTimeout())
	}
	if cfg.Path() != path {
		t.Errorf("Path = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadFrom_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "api_base_url": "https://refine.example.com/api/",
  "default_language": "go",
  "export_dir": "/tmp/out",
  "request_timeout_seconds": 15,
  "notifications_enabled": true,
  "theme": "nord"
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got := cfg.GetAPIBaseURL(); got != "https://refine.example.com/api" {
		t.Errorf("APIBaseURL = %q, trailing slash should be trimmed", got)
	}
	if cfg.GetDefaultLanguage() != "go" {
		t.Errorf("DefaultLanguage = %q", cfg.GetDefaultLanguage())
	}
	if cfg.GetExportDir() != "/tmp/out" {
		t.Errorf("ExportDir = %q", cfg.GetExportDir())
	}
	if cfg.GetRequestTimeout() != 15*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.GetRequestTimeout())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled should be true")
	}
	if cfg.GetTheme() != "nord" {
		t.Errorf("Theme = %q", cfg.GetTheme())
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !perrors.Is(err, perrors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", perrors.GetKind(err))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  &Config{APIBaseURL: DefaultAPIBaseURL, DefaultLanguage: "python"},
		},
		{
			name:    "bad scheme",
			cfg:     &Config{APIBaseURL: "ftp://example.com", DefaultLanguage: "python"},
			wantErr: true,
		},
		{
			name:    "no host",
			cfg:     &Config{APIBaseURL: "http://", DefaultLanguage: "python"},
			wantErr: true,
		},
		{
			name:    "unknown language",
			cfg:     &Config{APIBaseURL: DefaultAPIBaseURL, DefaultLanguage: "cobol"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     &Config{APIBaseURL: DefaultAPIBaseURL, DefaultLanguage: "python", RequestTimeoutSeconds: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.KindInvalid) {
				t.Errorf("expected KindInvalid, got %v", perrors.GetKind(err))
			}
		})
	}
}

func TestLoadFrom_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_language":"cobol"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := New(path)
	if err := cfg.SetAPIBaseURL("http://127.0.0.1:9999/api"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetDefaultLanguage("rust"); err != nil {
		t.Fatal(err)
	}
	cfg.SetExportDir("exports")
	cfg.SetRequestTimeoutSeconds(30)
	cfg.SetNotificationsEnabled(true)
	cfg.SetTheme("dracula")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved config is not JSON: %v", err)
	}
	if raw["api_base_url"] != "http://127.0.0.1:9999/api" {
		t.Errorf("api_base_url = %v", raw["api_base_url"])
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.GetDefaultLanguage() != "rust" || loaded.GetExportDir() != "exports" ||
		loaded.GetRequestTimeout() != 30*time.Second || !loaded.GetNotificationsEnabled() ||
		loaded.GetTheme() != "dracula" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Save(); err == nil {
		t.Error("expected error saving config without a path")
	}
}

func TestSetters_RejectInvalid(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "config.json"))

	if err := cfg.SetAPIBaseURL("not a url"); err == nil {
		t.Error("SetAPIBaseURL should reject a relative URL")
	}
	if cfg.GetAPIBaseURL() != DefaultAPIBaseURL {
		t.Error("failed SetAPIBaseURL must not change the value")
	}

	err := cfg.SetDefaultLanguage("klingon")
	if !perrors.Is(err, perrors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", err)
	}
	if cfg.GetDefaultLanguage() != "python" {
		t.Error("failed SetDefaultLanguage must not change the value")
	}
}

func TestDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Path() != filepath.Join(dir, "config.json") {
		t.Errorf("Path = %q", cfg.Path())
	}
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "config.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			cfg.SetRequestTimeoutSeconds(n)
			cfg.SetNotificationsEnabled(n%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = cfg.GetRequestTimeout()
			_ = cfg.GetAPIBaseURL()
			_ = cfg.Validate()
		}()
	}
	wg.Wait()
}
