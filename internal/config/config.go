package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. MOVIESEARCH_BASE_URL
const EnvPrefix = "MOVIESEARCH"

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version" yaml:"version" ignored:"true"`
	BaseURL        string     `toml:"base_url" yaml:"base_url" envconfig:"BASE_URL"`
	LogFile        string     `toml:"log_file" yaml:"log_file" envconfig:"LOG_FILE"`
	Debug          bool       `toml:"debug" yaml:"debug" envconfig:"DEBUG"`
	RequestTimeout string     `toml:"request_timeout,omitempty" yaml:"request_timeout,omitempty" envconfig:"REQUEST_TIMEOUT"` // empty means no timeout
	UISettings     UISettings `toml:"ui" yaml:"ui" envconfig:"UI"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScores bool `toml:"show_scores" yaml:"show_scores" envconfig:"SHOW_SCORES"`
	PageSize   int  `toml:"page_size" yaml:"page_size" envconfig:"PAGE_SIZE"` // results per backend page
}

// Timeout parses RequestTimeout. Zero means requests never time out.
func (c *Config) Timeout() (time.Duration, error) {
	if c.RequestTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid request_timeout %q: %w", c.RequestTimeout, err)
	}
	return d, nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "moviesearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file yields the defaults; environment overrides apply either way.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// The format is chosen by extension: .yaml/.yml are YAML, anything else is TOML.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		BaseURL: "http://localhost:8080",
		LogFile: "moviesearch.log",
		UISettings: UISettings{
			ShowScores: true,
			PageSize:   20,
		},
	}
}

// ApplyDefaults fills zero values that have no meaning of their own
func ApplyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.UISettings.PageSize <= 0 {
		cfg.UISettings.PageSize = 20
	}
}

// applyEnv loads ./.env when present and applies MOVIESEARCH_* overrides
func applyEnv(cfg *Config) error {
	// .env is optional
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("load config error: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
