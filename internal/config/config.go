package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"studydesk/internal/utils"
)

// Storage backends.
const (
	BackendSQLite  = "sqlite"
	BackendFile    = "file"
	BackendKeyring = "keyring"
)

// Environment overrides.
const (
	EnvStorageBackend = "STUDYDESK_STORAGE_BACKEND"
	EnvDataDir        = "STUDYDESK_DATA_DIR"
	EnvLogMode        = "STUDYDESK_LOG_MODE"
	EnvKeyringPass    = "STUDYDESK_KEYRING_PASSWORD"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Window  WindowConfig  `yaml:"window"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite, file, keyring
	DataDir string `yaml:"dataDir"`
	// KeyringPassword unlocks the encrypted file keyring.
	KeyringPassword string `yaml:"keyringPassword"`
}

type LogConfig struct {
	Mode string `yaml:"mode"` // dev, prod
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			DataDir: DefaultDataDir(),
		},
		Log: LogConfig{
			Mode: "dev",
		},
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
		},
	}
}

// Load reads configPath over the defaults, then applies .env and environment
// overrides. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", configPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvStorageBackend)); v != "" {
		cfg.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogMode)); v != "" {
		cfg.Log.Mode = v
	}
	if v := os.Getenv(EnvKeyringPass); v != "" {
		cfg.Storage.KeyringPassword = v
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendKeyring:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendKeyring && c.Storage.KeyringPassword == "" {
		return fmt.Errorf("keyring backend requires a password (set %s)", EnvKeyringPass)
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return errors.New("storage data dir is required")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// DBPath is the sqlite database file inside the data dir.
func (c *Config) DBPath() string {
	return filepath.Join(c.Storage.DataDir, "studydesk.db")
}

// PreferencesDir holds the file and keyring backends.
func (c *Config) PreferencesDir() string {
	return filepath.Join(c.Storage.DataDir, "preferences")
}
