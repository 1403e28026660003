// Package config provides configuration loading for docstream.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	m "github.com/mouse-blink/docstream/internal/model"
)

const (
	envPrefix         = "DOCSTREAM_"
	maxConfigFileSize = 1024 * 1024
	defaultMaxActive  = 64
	defaultMarker     = "@livedoc"
)

// Config holds the runtime settings.
type Config struct {
	Verbose  bool           `koanf:"verbose"`
	Marker   string         `koanf:"marker"`
	Sessions SessionsConfig `koanf:"sessions"`
	Template m.Layout       `koanf:"template"`
}

// SessionsConfig bounds the session store.
type SessionsConfig struct {
	MaxActive int `koanf:"max_active"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Marker:   defaultMarker,
		Sessions: SessionsConfig{MaxActive: defaultMaxActive},
		Template: m.DefaultLayout,
	}
}

// DefaultPath returns ~/.config/docstream/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "docstream", "config.yaml"), nil
}

// Load reads configuration from the YAML file at path, then applies
// DOCSTREAM_* environment overrides. A missing file is not an error.
//
// Environment variables map to keys by splitting on the first underscore:
//
//	DOCSTREAM_SESSIONS_MAX_ACTIVE -> sessions.max_active
//	DOCSTREAM_TEMPLATE_END        -> template.end
//	DOCSTREAM_VERBOSE             -> verbose
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}

		if content != nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if c.Sessions.MaxActive <= 0 {
		return fmt.Errorf("sessions.max_active must be positive, got %d", c.Sessions.MaxActive)
	}

	l := c.Template
	if l.Overview <= 0 || l.Details <= l.Overview || l.End <= l.Details {
		return fmt.Errorf("template offsets must be increasing and positive, got %d/%d/%d", l.Overview, l.Details, l.End)
	}

	if strings.TrimSpace(c.Marker) == "" {
		return errors.New("marker must not be empty")
	}

	return nil
}

func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))

	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	return parts[0] + "." + parts[1]
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return content, nil
}
