package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// contentKinds are the playlist kinds the CPL schema accepts.
var contentKinds = map[string]bool{
	"feature":       true,
	"trailer":       true,
	"test":          true,
	"teaser":        true,
	"rating":        true,
	"advertisement": true,
	"short":         true,
	"transitional":  true,
	"psa":           true,
	"policy":        true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePackage(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateLog(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir must be set")
	}
	return nil
}

func (c *Config) validatePackage() error {
	p := c.Package
	if strings.TrimSpace(p.Issuer) == "" {
		return errors.New("package.issuer must be set")
	}
	if kind := strings.ToLower(strings.TrimSpace(p.Kind)); kind != "" && !contentKinds[kind] {
		return fmt.Errorf("package.kind %q is not a recognized content kind", p.Kind)
	}
	switch strings.ToLower(strings.TrimSpace(p.Standard)) {
	case "", "none", "interop", "mxf-interop", "smpte":
	default:
		return fmt.Errorf("package.standard %q must be interop or smpte", p.Standard)
	}
	if p.Duration < 0 {
		return errors.New("package.duration must not be negative")
	}
	if p.EntryPoint < 0 {
		return errors.New("package.entry_point must not be negative")
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	lang := strings.TrimSpace(c.Subtitles.Language)
	if lang == "" {
		return nil
	}
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("subtitles.language %q is not a valid language tag: %w", lang, err)
	}
	return nil
}

func (c *Config) validateLog() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "none", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("log.level %q is not recognized", c.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format %q is not recognized", c.Log.Format)
	}
	return nil
}
