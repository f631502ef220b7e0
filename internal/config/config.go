package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Package describes the manifest fields copied into every entity and the
// ingest override policy.
type Package struct {
	Issuer     string `toml:"issuer" env:"ISSUER"`
	Creator    string `toml:"creator" env:"CREATOR"`
	Title      string `toml:"title" env:"TITLE"`
	Annotation string `toml:"annotation" env:"ANNOTATION"`
	Kind       string `toml:"kind" env:"KIND"`
	Rating     string `toml:"rating" env:"RATING"`
	Basename   string `toml:"basename" env:"BASENAME"`

	// Standard is the dialect assumed when inspection cannot detect one.
	Standard     string `toml:"standard" env:"STANDARD"`
	Stereoscopic bool   `toml:"stereoscopic" env:"STEREOSCOPIC"`

	AspectRatio string `toml:"aspect_ratio" env:"ASPECT_RATIO"`
	Duration    int    `toml:"duration" env:"DURATION"`
	EntryPoint  int    `toml:"entry_point" env:"ENTRY_POINT"`
}

// Subtitles configures timed-text handling.
type Subtitles struct {
	Language string `toml:"language" env:"SUBTITLE_LANGUAGE"`
}

// Digest configures essence digest computation and its cache.
type Digest struct {
	Enabled   bool   `toml:"enabled" env:"DIGEST_ENABLED"`
	CachePath string `toml:"cache_path" env:"DIGEST_CACHE_PATH"`
}

// Output configures where the assembled package is staged.
type Output struct {
	Dir string `toml:"dir" env:"OUTPUT_DIR"`
}

// Log configures diagnostic output.
type Log struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
}

// Config is the root configuration document.
type Config struct {
	Package   Package   `toml:"package"`
	Subtitles Subtitles `toml:"subtitles"`
	Digest    Digest    `toml:"digest"`
	Output    Output    `toml:"output"`
	Log       Log       `toml:"log"`
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dcpforge", "config.toml"), nil
}

// Load reads the config file at path (or the default location when path is
// empty), overlays DCPFORGE_* environment variables, and validates the
// result. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		resolved = defaultPath
	}
	expanded, err := ExpandPath(resolved)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", expanded, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", expanded, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DCPFORGE_"}); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || !strings.HasPrefix(trimmed, "~") {
		return trimmed, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if trimmed == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(trimmed, "~/")), nil
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

// Render returns the config as TOML for display.
func (c *Config) Render() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(data), nil
}
