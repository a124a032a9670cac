package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings marauder reads at startup.
type Config struct {
	Catalog        string
	LogFile        string
	LogLevel       string
	Locale         string
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/marauder/config.toml"
	defaultCatalog        = "bundled"
	defaultLogFile        = "~/.local/state/marauder/marauder.log"
	defaultLogLevel       = "info"
	defaultLocale         = "es"
	defaultRequestTimeout = 5 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Catalog:        defaultCatalog,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		Locale:         defaultLocale,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog        string `toml:"catalog"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		Locale         string `toml:"locale"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Catalog); v != "" {
		cfg.Catalog = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Locale)); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// Overrides are command-line values that take precedence over the file.
// Empty fields leave the loaded value alone.
type Overrides struct {
	Catalog  string
	LogLevel string
	Locale   string
}

// Apply returns c with the non-empty overrides applied.
func (c Config) Apply(o Overrides) Config {
	if v := strings.TrimSpace(o.Catalog); v != "" {
		c.Catalog = v
	}
	if v := strings.ToLower(strings.TrimSpace(o.LogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.ToLower(strings.TrimSpace(o.Locale)); v != "" {
		c.Locale = v
	}
	return c
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
