package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at a temp dir and runs the test from another temp dir
// so neither a real config file nor a real .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	configDir := filepath.Join(home, ".config", "spindle")
	if cfg.CacheMode != CacheSQLite {
		t.Errorf("CacheMode = %q, want %q", cfg.CacheMode, CacheSQLite)
	}
	if cfg.CacheDB != filepath.Join(configDir, "cache.db") {
		t.Errorf("CacheDB = %q", cfg.CacheDB)
	}
	if cfg.TokenFile != filepath.Join(configDir, "token.json") {
		t.Errorf("TokenFile = %q", cfg.TokenFile)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)

	t.Setenv("SPINDLE_CLIENT_ID", "env-id")
	t.Setenv("SPINDLE_CLIENT_SECRET", "env-secret")
	t.Setenv("SPINDLE_CACHE_MODE", "MEMORY")
	t.Setenv("SPINDLE_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ClientID != "env-id" || cfg.ClientSecret != "env-secret" {
		t.Errorf("credentials = %q/%q", cfg.ClientID, cfg.ClientSecret)
	}
	if cfg.CacheMode != CacheMemory {
		t.Errorf("CacheMode = %q, want %q", cfg.CacheMode, CacheMemory)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(".env", []byte("SPINDLE_ACCESS_TOKEN=from-dotenv\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv sets real process variables; register cleanup through Setenv
	t.Setenv("SPINDLE_ACCESS_TOKEN", "")
	_ = os.Unsetenv("SPINDLE_ACCESS_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccessToken != "from-dotenv" {
		t.Errorf("AccessToken = %q, want from-dotenv", cfg.AccessToken)
	}
}

func TestSaveAndLoad(t *testing.T) {
	home := isolate(t)

	cfg := &Config{
		ClientID:     "id",
		ClientSecret: "secret",
		CacheMode:    CacheOff,
		CacheDB:      "/tmp/other.db",
		BaseURL:      "http://localhost:9999/",
		Timeout:      12 * time.Second,
		LogLevel:     "debug",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configFile := filepath.Join(home, ".config", "spindle", "config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.ClientID != "id" || loaded.ClientSecret != "secret" {
		t.Errorf("credentials = %q/%q", loaded.ClientID, loaded.ClientSecret)
	}
	if loaded.CacheMode != CacheOff {
		t.Errorf("CacheMode = %q, want %q", loaded.CacheMode, CacheOff)
	}
	if loaded.CacheDB != "/tmp/other.db" {
		t.Errorf("CacheDB = %q", loaded.CacheDB)
	}
	if loaded.BaseURL != "http://localhost:9999/" {
		t.Errorf("BaseURL = %q", loaded.BaseURL)
	}
	if loaded.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v, want 12s", loaded.Timeout)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", loaded.LogLevel)
	}
}
