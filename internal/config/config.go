package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache modes
const (
	CacheSQLite = "sqlite"
	CacheMemory = "memory"
	CacheOff    = "off"
)

// Config holds application configuration
type Config struct {
	// App credentials for the client credentials grant
	ClientID     string
	ClientSecret string

	// Fixed bearer token; overrides every other credential
	AccessToken string

	// Saved OAuth token refreshed through the accounts service
	TokenFile string

	// Response cache
	CacheMode string
	CacheDB   string

	// HTTP transport
	BaseURL  string
	ProxyURL string
	Timeout  time.Duration

	// Log level for the CLI (debug, info, warn, error)
	LogLevel string
}

// Load reads configuration from .env, the config file and environment
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("cache_mode", CacheSQLite)
	v.SetDefault("cache_db", filepath.Join(configDir, "cache.db"))
	v.SetDefault("token_file", filepath.Join(configDir, "token.json"))
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("log_level", "warn")

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("SPINDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		ClientID:     v.GetString("client_id"),
		ClientSecret: v.GetString("client_secret"),
		AccessToken:  v.GetString("access_token"),
		TokenFile:    v.GetString("token_file"),
		CacheMode:    strings.ToLower(v.GetString("cache_mode")),
		CacheDB:      v.GetString("cache_db"),
		BaseURL:      v.GetString("base_url"),
		ProxyURL:     v.GetString("proxy_url"),
		Timeout:      v.GetDuration("timeout"),
		LogLevel:     v.GetString("log_level"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "spindle")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(getConfigDir(), "config.yaml"))
}

// SaveTo writes configuration to the given file
func (c *Config) SaveTo(configFile string) error {
	v := viper.New()

	v.Set("client_id", c.ClientID)
	v.Set("client_secret", c.ClientSecret)
	v.Set("access_token", c.AccessToken)
	v.Set("token_file", c.TokenFile)
	v.Set("cache_mode", c.CacheMode)
	v.Set("cache_db", c.CacheDB)
	v.Set("base_url", c.BaseURL)
	v.Set("proxy_url", c.ProxyURL)
	v.Set("timeout", c.Timeout.String())
	v.Set("log_level", c.LogLevel)

	return v.WriteConfigAs(configFile)
}
