package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/wflog/pkg/core/logging"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfig = "WFLOG_CONFIG"
	EnvLevel  = "WFLOG_LEVEL"
)

// Config holds the complete application configuration
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	// path the config was loaded from, empty for defaults
	path string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	// Level is a level name or a rank "1".."6"
	Level string `toml:"level" yaml:"level"`

	// SingleStream routes every severity to stdout
	SingleStream bool `toml:"single_stream" yaml:"single_stream"`

	// WatchDebounce delays a reload until the file has been quiet this long
	WatchDebounce Duration `toml:"watch_debounce" yaml:"watch_debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. WFLOG_LEVEL, when set,
// overrides the file's level.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads a .env file if present, then the file named by
// WFLOG_CONFIG or the first default location that exists. Without any
// config file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = discover()
	}
	if path != "" {
		return Load(path)
	}

	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from the given files (default
// ".env"). Missing files are skipped; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// DefaultPaths returns the locations searched when WFLOG_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{
		"./configs/wflog.toml",
		"./wflog.toml",
		"./wflog.yaml",
		"./wflog.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/wflog/config.toml"))
	}
	return paths
}

func discover() string {
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFile decodes path without environment overrides
func loadFile(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{path: path}
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = logging.DefaultLevel().String()
	}
	if c.Logging.WatchDebounce.Duration == 0 {
		c.Logging.WatchDebounce.Duration = 250 * time.Millisecond
	}
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLevel); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks that the configured level exists
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	if c.Logging.WatchDebounce.Duration < 0 {
		return fmt.Errorf("invalid logging.watch_debounce: %s", c.Logging.WatchDebounce)
	}
	return nil
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Level returns the configured level
func (c *Config) Level() (logging.Level, error) {
	return logging.ParseLevel(c.Logging.Level)
}

// Apply sets the configured level on l. On error the threshold of l is
// unchanged.
func (c *Config) Apply(l *logging.Logger) error {
	level, err := c.Level()
	if err != nil {
		return err
	}
	_, err = l.SetLevel(int(level))
	return err
}

// NewLogger creates a logger from the configuration. Nil writers select
// os.Stdout and os.Stderr.
func (c *Config) NewLogger(output, errorOutput io.Writer) (*logging.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return logging.NewWithConfig(logging.Config{
		Level:        level,
		Output:       output,
		ErrorOutput:  errorOutput,
		SingleStream: c.Logging.SingleStream,
	}), nil
}
